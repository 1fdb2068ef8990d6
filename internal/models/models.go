package models

import "time"

// Record is a single (id, value) sample. IDs are for display only and may repeat.
type Record struct {
	ID    uint32  `json:"id"`
	Value float64 `json:"value"`
}

// Passenger is one typed row of the passenger manifest.
type Passenger struct {
	PassengerID     uint32   `json:"passenger_id"`
	Survived        uint32   `json:"survived"`
	Pclass          uint32   `json:"pclass"`
	Name            string   `json:"name"`
	Sex             string   `json:"sex"`
	Age             *float64 `json:"age,omitempty"`
	SiblingsSpouses uint32   `json:"sib_sp"`
	ParentsChildren uint32   `json:"parch"`
	Ticket          string   `json:"ticket"`
	Fare            float64  `json:"fare"`
	Cabin           *string  `json:"cabin,omitempty"`
	Embarked        *string  `json:"embarked,omitempty"`
}

// Statistics is the result of one full pass over a manifest.
type Statistics struct {
	TotalPassengers    uint32  `json:"total_passengers"`
	SurvivedPassengers uint32  `json:"survived_passengers"`
	MalePassengers     uint32  `json:"male_passengers"`
	FemalePassengers   uint32  `json:"female_passengers"`
	SurvivalRate       float64 `json:"survival_rate"`
}

// ColumnInfo describes one declared manifest column.
type ColumnInfo struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Optional bool   `json:"optional"`
}

type MeanRequest struct {
	Records []Record `json:"records" validate:"required,max=1000000"`
}

type MeanResult struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
}

// RecordSummary describes a generated record set and its mean.
type RecordSummary struct {
	Count   int           `json:"count"`
	Mean    float64       `json:"mean"`
	Sample  []Record      `json:"sample"`
	Elapsed time.Duration `json:"elapsed_ns"`
}
