package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type BloodType string

const (
	BloodONeg  BloodType = "O-"
	BloodOPos  BloodType = "O+"
	BloodANeg  BloodType = "A-"
	BloodAPos  BloodType = "A+"
	BloodBNeg  BloodType = "B-"
	BloodBPos  BloodType = "B+"
	BloodABNeg BloodType = "AB-"
	BloodABPos BloodType = "AB+"
)

var BloodTypes = []BloodType{
	BloodONeg, BloodOPos,
	BloodANeg, BloodAPos,
	BloodBNeg, BloodBPos,
	BloodABNeg, BloodABPos,
}

func ParseBloodType(s string) (BloodType, error) {
	bt := BloodType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range BloodTypes {
		if bt == known {
			return bt, nil
		}
	}
	return "", fmt.Errorf("%w: unknown blood type %q", ErrValidation, s)
}

type Component string

const (
	ComponentWholeBlood Component = "whole-blood"
	ComponentRedCell    Component = "red-cell"
	ComponentPlasma     Component = "plasma"
	ComponentPlatelet   Component = "platelet"
)

var Components = []Component{
	ComponentWholeBlood, ComponentRedCell, ComponentPlasma, ComponentPlatelet,
}

func ParseComponent(s string) (Component, error) {
	c := Component(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Components {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown component %q", ErrValidation, s)
}

// ParseVolumeMl converts the free-form volume field into a number.
// Unparsable input is a validation error, never coerced.
func ParseVolumeMl(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: volume_ml must be a number, got %q", ErrValidation, s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: volume_ml must be positive", ErrValidation)
	}
	return v, nil
}

// BloodRequest is immutable once built; construct it via NewBloodRequest.
type BloodRequest struct {
	BloodType   BloodType `json:"blood_type"`
	Component   Component `json:"component"`
	VolumeMl    float64   `json:"volume_ml"`
	DesiredDate time.Time `json:"desired_date"`
	Notes       string    `json:"notes,omitempty"`
}

func NewBloodRequest(bloodType, component, volumeMl string, desiredDate time.Time, notes string) (BloodRequest, error) {
	bt, err := ParseBloodType(bloodType)
	if err != nil {
		return BloodRequest{}, err
	}

	c, err := ParseComponent(component)
	if err != nil {
		return BloodRequest{}, err
	}

	v, err := ParseVolumeMl(volumeMl)
	if err != nil {
		return BloodRequest{}, err
	}

	if desiredDate.IsZero() {
		return BloodRequest{}, fmt.Errorf("%w: desired_date is required", ErrValidation)
	}

	return BloodRequest{
		BloodType:   bt,
		Component:   c,
		VolumeMl:    v,
		DesiredDate: desiredDate,
		Notes:       notes,
	}, nil
}

// InventorySnapshot reflects inventory at query time only; it is never
// cached across requests.
type InventorySnapshot struct {
	BloodType         BloodType `json:"blood_type"`
	Component         Component `json:"component"`
	AvailableVolumeMl float64   `json:"available_volume_ml"`
	QueriedAt         time.Time `json:"queried_at"`
}

func (s InventorySnapshot) Covers(volumeMl float64) bool {
	return s.AvailableVolumeMl >= volumeMl
}
