package entities

// CompanyPayload is the registration request supplied by the client at
// order-creation time. It is immutable for the lifetime of the order.
type CompanyPayload struct {
	CompanyName        string
	CompanyType        string
	RegisteredOffice   Address
	Directors          []Officer
	Shareholders       []Shareholder
	SICCodes           []string
	AuthenticationCode string
}

type Address struct {
	AddressLine1 string
	AddressLine2 string
	Locality     string
	Region       string
	PostalCode   string
	Country      string
}

type Officer struct {
	Name        string
	Nationality string
	Occupation  string
	Address     Address
}

type Shareholder struct {
	Name   string
	Shares int
}

// CompanyResult is written only by the registration trigger.
type CompanyResult struct {
	CompanyNumber     string
	CompanyStatus     string
	IncorporationDate string

	FailureReason string
	Retryable     bool

	// Retries counts failed registry attempts before the final outcome.
	Retries int
}

func (r CompanyResult) Succeeded() bool {
	return r.CompanyNumber != ""
}
