package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opencompanybot/registration-service/internal/entities"
)

// CreatePaymentRequest starts a payment-to-registration order
type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	Network     string          `json:"network,omitempty"`
	Description string          `json:"description,omitempty"`
	Company     CompanyPayload  `json:"company" validate:"required"`
}

// CompanyPayload is the registration request attached to an order
type CompanyPayload struct {
	CompanyName        string        `json:"company_name" validate:"required"`
	CompanyType        string        `json:"company_type,omitempty"`
	RegisteredOffice   Address       `json:"registered_office_address" validate:"required"`
	Directors          []Officer     `json:"directors" validate:"required,min=1,dive"`
	Shareholders       []Shareholder `json:"shareholders" validate:"required,min=1,dive"`
	SICCodes           []string      `json:"sic_codes" validate:"required,min=1"`
	AuthenticationCode string        `json:"authentication_code,omitempty"`
}

// Address registered office or officer address
type Address struct {
	AddressLine1 string `json:"address_line_1" validate:"required"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	Locality     string `json:"locality" validate:"required"`
	Region       string `json:"region,omitempty"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Country      string `json:"country" validate:"required"`
}

// Officer company director
type Officer struct {
	Name        string  `json:"name" validate:"required"`
	Nationality string  `json:"nationality,omitempty"`
	Occupation  string  `json:"occupation,omitempty"`
	Address     Address `json:"address" validate:"required"`
}

// Shareholder initial shareholder
type Shareholder struct {
	Name   string `json:"name" validate:"required"`
	Shares int    `json:"shares" validate:"required,gt=0"`
}

// Order view of a payment-to-registration order
type Order struct {
	OrderID          string          `json:"order_id"`
	Status           string          `json:"status"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Network          string          `json:"network"`
	Description      string          `json:"description,omitempty"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	PaymentAddress   string          `json:"payment_address,omitempty"`
	Company          *CompanyResult  `json:"company,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CompanyResult outcome of the registration leg
type CompanyResult struct {
	CompanyNumber     string `json:"company_number,omitempty"`
	CompanyStatus     string `json:"company_status,omitempty"`
	IncorporationDate string `json:"incorporation_date,omitempty"`
	FailureReason     string `json:"failure_reason,omitempty"`
	Retryable         bool   `json:"retryable,omitempty"`
	Retries           int    `json:"retries"`
}

// PaymentEvent processor callback payload
type PaymentEvent struct {
	PaymentReference string `json:"payment_reference" validate:"required"`
	Status           string `json:"status" validate:"required"`
}

func PayloadJSONToEntity(p CompanyPayload) entities.CompanyPayload {
	directors := make([]entities.Officer, 0, len(p.Directors))
	for _, d := range p.Directors {
		directors = append(directors, entities.Officer{
			Name:        d.Name,
			Nationality: d.Nationality,
			Occupation:  d.Occupation,
			Address:     AddressJSONToEntity(d.Address),
		})
	}
	shareholders := make([]entities.Shareholder, 0, len(p.Shareholders))
	for _, s := range p.Shareholders {
		shareholders = append(shareholders, entities.Shareholder{Name: s.Name, Shares: s.Shares})
	}

	return entities.CompanyPayload{
		CompanyName:        p.CompanyName,
		CompanyType:        p.CompanyType,
		RegisteredOffice:   AddressJSONToEntity(p.RegisteredOffice),
		Directors:          directors,
		Shareholders:       shareholders,
		SICCodes:           p.SICCodes,
		AuthenticationCode: p.AuthenticationCode,
	}
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		Locality:     a.Locality,
		Region:       a.Region,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	order := Order{
		OrderID:          o.OrderID,
		Status:           string(o.Status),
		Amount:           o.Amount,
		Currency:         o.Currency,
		Network:          o.Network,
		Description:      o.Description,
		PaymentReference: o.PaymentReference,
		PaymentAddress:   o.PaymentAddress,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}

	if o.CompanyResult != nil {
		order.Company = &CompanyResult{
			CompanyNumber:     o.CompanyResult.CompanyNumber,
			CompanyStatus:     o.CompanyResult.CompanyStatus,
			IncorporationDate: o.CompanyResult.IncorporationDate,
			FailureReason:     o.CompanyResult.FailureReason,
			Retryable:         o.CompanyResult.Retryable,
			Retries:           o.CompanyResult.Retries,
		}
	}
	return order
}
