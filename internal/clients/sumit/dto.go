package sumit

import "encoding/json"

type credentials struct {
	CompanyID string `json:"CompanyID"`
	APIKey    string `json:"APIKey"`
}

type customer struct {
	ID           *string `json:"ID,omitempty"`
	Name         string  `json:"Name"`
	EmailAddress string  `json:"EmailAddress,omitempty"`
	Phone        string  `json:"Phone,omitempty"`
}

type item struct {
	Item struct {
		Name string `json:"Name"`
	} `json:"Item"`
	Quantity  int     `json:"Quantity"`
	UnitPrice float64 `json:"UnitPrice"`
	Currency  string  `json:"Currency"`
}

type chargeRequest struct {
	Credentials    credentials `json:"Credentials"`
	Customer       customer    `json:"Customer"`
	SingleUseToken string      `json:"SingleUseToken,omitempty"`
	Items          []item      `json:"Items"`
	VATIncluded    bool        `json:"VATIncluded"`
}

type tokenizeRequest struct {
	Credentials    credentials `json:"Credentials"`
	Customer       customer    `json:"Customer"`
	SingleUseToken string      `json:"SingleUseToken"`
}

type envelope struct {
	Status                int             `json:"Status"`
	UserErrorMessage      *string         `json:"UserErrorMessage"`
	TechnicalErrorDetails *string         `json:"TechnicalErrorDetails"`
	Data                  json.RawMessage `json:"Data"`
}

type chargeData struct {
	CustomerID int64 `json:"CustomerID"`
	Payment    struct {
		ID                int64  `json:"ID"`
		ValidPayment      bool   `json:"ValidPayment"`
		StatusDescription string `json:"StatusDescription"`
		PaymentMethod     struct {
			ID int64 `json:"ID"`
		} `json:"PaymentMethod"`
	} `json:"Payment"`
}

type tokenizeData struct {
	CustomerID      int64 `json:"CustomerID"`
	PaymentMethodID int64 `json:"PaymentMethodID"`
}
