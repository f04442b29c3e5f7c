package models

// Person is the human identity meals are attributed to. Login credentials
// live on Account; the two are created together at registration.
type Person struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null"`
}

func (Person) TableName() string {
	return "people"
}
