package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opencompanybot/registration-service/internal/entities"
)

type Order struct {
	OrderID          string          `db:"order_id"`
	Status           string          `db:"status"`
	Amount           decimal.Decimal `db:"amount"`
	Currency         string          `db:"currency"`
	Network          string          `db:"network"`
	Description      sql.NullString  `db:"description"`
	PaymentReference sql.NullString  `db:"payment_reference"`
	PaymentAddress   sql.NullString  `db:"payment_address"`
	CompanyPayload   []byte          `db:"company_payload"`
	CompanyResult    []byte          `db:"company_result"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
	Version          int64           `db:"version"`
}

// companyPayload is the JSONB shape of the registration request.
type companyPayload struct {
	CompanyName        string        `json:"company_name"`
	CompanyType        string        `json:"company_type"`
	RegisteredOffice   address       `json:"registered_office_address"`
	Directors          []officer     `json:"directors"`
	Shareholders       []shareholder `json:"shareholders"`
	SICCodes           []string      `json:"sic_codes"`
	AuthenticationCode string        `json:"authentication_code,omitempty"`
}

type address struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	Locality     string `json:"locality"`
	Region       string `json:"region,omitempty"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

type officer struct {
	Name        string  `json:"name"`
	Nationality string  `json:"nationality,omitempty"`
	Occupation  string  `json:"occupation,omitempty"`
	Address     address `json:"address"`
}

type shareholder struct {
	Name   string `json:"name"`
	Shares int    `json:"shares"`
}

type companyResult struct {
	CompanyNumber     string `json:"company_number,omitempty"`
	CompanyStatus     string `json:"company_status,omitempty"`
	IncorporationDate string `json:"incorporation_date,omitempty"`
	FailureReason     string `json:"failure_reason,omitempty"`
	Retryable         bool   `json:"retryable,omitempty"`
	Retries           int    `json:"retries"`
}

func marshalPayload(p entities.CompanyPayload) ([]byte, error) {
	directors := make([]officer, 0, len(p.Directors))
	for _, d := range p.Directors {
		directors = append(directors, officer{
			Name:        d.Name,
			Nationality: d.Nationality,
			Occupation:  d.Occupation,
			Address:     addressToModel(d.Address),
		})
	}
	shareholders := make([]shareholder, 0, len(p.Shareholders))
	for _, s := range p.Shareholders {
		shareholders = append(shareholders, shareholder{Name: s.Name, Shares: s.Shares})
	}

	return json.Marshal(companyPayload{
		CompanyName:        p.CompanyName,
		CompanyType:        p.CompanyType,
		RegisteredOffice:   addressToModel(p.RegisteredOffice),
		Directors:          directors,
		Shareholders:       shareholders,
		SICCodes:           p.SICCodes,
		AuthenticationCode: p.AuthenticationCode,
	})
}

func unmarshalPayload(data []byte) (entities.CompanyPayload, error) {
	var p companyPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return entities.CompanyPayload{}, fmt.Errorf("failed to unmarshal company payload: %w", err)
	}

	directors := make([]entities.Officer, 0, len(p.Directors))
	for _, d := range p.Directors {
		directors = append(directors, entities.Officer{
			Name:        d.Name,
			Nationality: d.Nationality,
			Occupation:  d.Occupation,
			Address:     addressToEntity(d.Address),
		})
	}
	shareholders := make([]entities.Shareholder, 0, len(p.Shareholders))
	for _, s := range p.Shareholders {
		shareholders = append(shareholders, entities.Shareholder{Name: s.Name, Shares: s.Shares})
	}

	return entities.CompanyPayload{
		CompanyName:        p.CompanyName,
		CompanyType:        p.CompanyType,
		RegisteredOffice:   addressToEntity(p.RegisteredOffice),
		Directors:          directors,
		Shareholders:       shareholders,
		SICCodes:           p.SICCodes,
		AuthenticationCode: p.AuthenticationCode,
	}, nil
}

func marshalResult(r *entities.CompanyResult) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(companyResult{
		CompanyNumber:     r.CompanyNumber,
		CompanyStatus:     r.CompanyStatus,
		IncorporationDate: r.IncorporationDate,
		FailureReason:     r.FailureReason,
		Retryable:         r.Retryable,
		Retries:           r.Retries,
	})
}

func unmarshalResult(data []byte) (*entities.CompanyResult, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var r companyResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal company result: %w", err)
	}
	return &entities.CompanyResult{
		CompanyNumber:     r.CompanyNumber,
		CompanyStatus:     r.CompanyStatus,
		IncorporationDate: r.IncorporationDate,
		FailureReason:     r.FailureReason,
		Retryable:         r.Retryable,
		Retries:           r.Retries,
	}, nil
}

func addressToModel(a entities.Address) address {
	return address{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		Locality:     a.Locality,
		Region:       a.Region,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
	}
}

func addressToEntity(a address) entities.Address {
	return entities.Address{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		Locality:     a.Locality,
		Region:       a.Region,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
	}
}

func OrderToEntity(o Order) (entities.Order, error) {
	payload, err := unmarshalPayload(o.CompanyPayload)
	if err != nil {
		return entities.Order{}, err
	}
	result, err := unmarshalResult(o.CompanyResult)
	if err != nil {
		return entities.Order{}, err
	}

	return entities.Order{
		OrderID:          o.OrderID,
		Status:           entities.Status(o.Status),
		Amount:           o.Amount,
		Currency:         o.Currency,
		Network:          o.Network,
		Description:      nullStringToString(o.Description),
		PaymentReference: nullStringToString(o.PaymentReference),
		PaymentAddress:   nullStringToString(o.PaymentAddress),
		CompanyPayload:   payload,
		CompanyResult:    result,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		Version:          o.Version,
	}, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
