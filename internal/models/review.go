package models

const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is an allowed rating value.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

type Review struct {
	ID         string `json:"id" gorm:"column:id;primaryKey"`
	ReviewerID string `json:"reviewer_id" gorm:"column:reviewer_id;index"`
	DriverID   string `json:"driver_id" gorm:"column:driver_id;index"`
	Rating     int    `json:"rating" gorm:"column:rating"`
	Comment    string `json:"comment" gorm:"column:comment"`
	Date       string `json:"date" gorm:"column:date"`
}

// TableName specifies the table name
func (Review) TableName() string {
	return "reviews"
}
