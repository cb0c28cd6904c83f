package entities

// User is a pet owner.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Lastname string `gorm:"not null" json:"lastname"`
}

// FullName returns "Name Lastname".
func (u User) FullName() string {
	return u.Name + " " + u.Lastname
}

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// Pet references its owner and category by id only. No foreign key constraints
// are declared: deleting a user or category leaves the pet row in place.
type Pet struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint   `gorm:"index" json:"category_id"`
	Name       string `gorm:"not null" json:"name"`
	Sex        string `gorm:"not null" json:"sex"`
	OwnerID    uint   `gorm:"index" json:"owner_id"`
	Age        int    `json:"age"`
}

// PetView is a pet joined with its category name and owner name.
// It is a read model and has no table of its own.
type PetView struct {
	ID         uint   `json:"id"`
	CategoryID uint   `json:"category_id"`
	Category   string `json:"category"`
	Name       string `json:"name"`
	Sex        string `json:"sex"`
	OwnerID    uint   `json:"owner_id"`
	Owner      string `json:"owner"`
	Age        int    `json:"age"`
}
