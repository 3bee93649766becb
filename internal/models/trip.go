package models

type Trip struct {
	ID              string `json:"id" gorm:"column:id;primaryKey"`
	DriverID        string `json:"driver_id" gorm:"column:driver_id;index"`
	StartLocation   string `json:"start_location" gorm:"column:start_location"`
	DepartureTime   string `json:"departure_time" gorm:"column:departure_time"`
	AvailablePlaces int    `json:"available_places" gorm:"column:available_places"`
	Price           int    `json:"price" gorm:"column:price"`
	TripType        string `json:"trip_type" gorm:"column:trip_type"`
	Day             string `json:"day" gorm:"column:day"`
	EndDate         string `json:"end_date" gorm:"column:end_date"`
	ArrivalLocation string `json:"arrival_location" gorm:"column:arrival_location"`
}

// TableName specifies the table name
func (Trip) TableName() string {
	return "trips"
}
