package types

import (
	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostCreateAccountPayload is the body of POST /api/v1/cosmos/accounts.
type PostCreateAccountPayload struct {
	// Unique account name
	Name *string `json:"name"`
	// Cosmos endpoint, e.g. https://myaccount.documents.azure.com
	Endpoint *string `json:"endpoint"`
	// Base64 encoded master key
	MasterKey *string `json:"masterKey"`
	// Optional default database
	DefaultDatabase string `json:"defaultDatabase,omitempty"`
	// Optional signing policy, empty lists mean unrestricted
	AllowedVerbs         []string `json:"allowedVerbs,omitempty"`
	AllowedResourceTypes []string `json:"allowedResourceTypes,omitempty"`
}

// Validate validates this post create account payload.
func (p *PostCreateAccountPayload) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("name", "body", p.Name); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("endpoint", "body", p.Endpoint); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("masterKey", "body", p.MasterKey); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return openapierrors.CompositeValidationError(res...)
	}

	return nil
}

// PutUpdateAccountPayload is the body of PUT /api/v1/cosmos/accounts/:account_id.
// Omitted fields are left unchanged.
type PutUpdateAccountPayload struct {
	Endpoint             *string  `json:"endpoint,omitempty"`
	MasterKey            *string  `json:"masterKey,omitempty"`
	DefaultDatabase      *string  `json:"defaultDatabase,omitempty"`
	AllowedVerbs         []string `json:"allowedVerbs,omitempty"`
	AllowedResourceTypes []string `json:"allowedResourceTypes,omitempty"`
}

// Validate validates this put update account payload.
func (p *PutUpdateAccountPayload) Validate(_ strfmt.Registry) error {
	return nil
}

// AccountResponse is the wire representation of an account.
// The master key is never returned.
type AccountResponse struct {
	AccountID            *string         `json:"accountId"`
	Name                 *string         `json:"name"`
	Endpoint             *string         `json:"endpoint"`
	DefaultDatabase      string          `json:"defaultDatabase,omitempty"`
	AllowedVerbs         []string        `json:"allowedVerbs,omitempty"`
	AllowedResourceTypes []string        `json:"allowedResourceTypes,omitempty"`
	CreatedAt            strfmt.DateTime `json:"createdAt,omitempty"`
	UpdatedAt            strfmt.DateTime `json:"updatedAt,omitempty"`
}

// Validate validates this account response.
func (a *AccountResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("accountId", "body", a.AccountID); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("name", "body", a.Name); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("endpoint", "body", a.Endpoint); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return openapierrors.CompositeValidationError(res...)
	}

	return nil
}

// ListAccountsResponse is the result of GET /api/v1/cosmos/accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// Validate validates this list accounts response.
func (l *ListAccountsResponse) Validate(formats strfmt.Registry) error {
	var res []error

	for _, a := range l.Accounts {
		if a == nil {
			continue
		}
		if err := a.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return openapierrors.CompositeValidationError(res...)
	}

	return nil
}
