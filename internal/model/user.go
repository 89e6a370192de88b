package model

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Username string  `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email    *string `gorm:"size:255" json:"email"`

	// Deleting a user removes its stocks and chat history with it.
	Stocks []Stock       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Chats  []ChatHistory `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}
