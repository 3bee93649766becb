package models

type Message struct {
	ID          string `json:"id" gorm:"column:id;primaryKey"`
	SenderID    string `json:"sender_id" gorm:"column:sender_id;index"`
	RecipientID string `json:"recipient_id" gorm:"column:recipient_id;index"`
	Content     string `json:"content" gorm:"column:content"`
	Date        string `json:"date" gorm:"column:date"`
}

// TableName specifies the table name
func (Message) TableName() string {
	return "messages"
}
