// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type OfferStatus string

const (
	OfferStatusOpen      OfferStatus = "OPEN"
	OfferStatusWon       OfferStatus = "WON"
	OfferStatusLost      OfferStatus = "LOST"
	OfferStatusCancelled OfferStatus = "CANCELLED"
	OfferStatusOnHold    OfferStatus = "ON_HOLD"
)

type OfferStage string

const (
	OfferStageInitial       OfferStage = "INITIAL"
	OfferStageProposalSent  OfferStage = "PROPOSAL_SENT"
	OfferStageNegotiation   OfferStage = "NEGOTIATION"
	OfferStageFinalApproval OfferStage = "FINAL_APPROVAL"
	OfferStagePOReceived    OfferStage = "PO_RECEIVED"
	OfferStageOrderBooked   OfferStage = "ORDER_BOOKED"
	OfferStageWon           OfferStage = "WON"
	OfferStageLost          OfferStage = "LOST"
)

// Offer is a sales proposal row. Month fields use the "YYYY-MM" format.
type Offer struct {
	ID                   int         `json:"id"`
	OfferReferenceNumber string      `json:"offerReferenceNumber"`
	ZoneID               int         `json:"zoneId"`
	ProductType          *string     `json:"productType"`
	OfferValue           *float64    `json:"offerValue"`
	POValue              *float64    `json:"poValue"`
	Status               OfferStatus `json:"status"`
	Stage                OfferStage  `json:"stage"`
	ExpectedMonth        *string     `json:"expectedMonth"`
	OfferMonth           *string     `json:"offerMonth"`
	POReceivedMonth      *string     `json:"poReceivedMonth"`
	PODate               *time.Time  `json:"poDate"`
	AssignedToID         *int        `json:"assignedToId"`
	CreatedByID          int         `json:"createdById"`
	CreatedAt            time.Time   `json:"createdAt"`
}

// Value returns the offer value, zero when unset.
func (o Offer) Value() float64 {
	if o.OfferValue == nil {
		return 0
	}
	return *o.OfferValue
}

// OrderValue prefers the PO value and falls back to the offer value.
func (o Offer) OrderValue() float64 {
	if o.POValue != nil && *o.POValue > 0 {
		return *o.POValue
	}
	return o.Value()
}

// PersonID is the user credited with the offer: the assignee, else the creator.
func (o Offer) PersonID() int {
	if o.AssignedToID != nil && *o.AssignedToID != 0 {
		return *o.AssignedToID
	}
	return o.CreatedByID
}

// OfferFilters restringe as consultas de ofertas e pedidos
type OfferFilters struct {
	Year             int
	ZoneID           *int
	UserID           *int
	ExcludedStatuses []OfferStatus
	OrderStages      []OfferStage
}
