package types

import (
	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostSignPayload is the body of POST /api/v1/cosmos/sign.
type PostSignPayload struct {
	// Account name or id to resolve the master key from (optional)
	Account string `json:"account,omitempty"`
	// Explicit base64 master key, takes precedence over account (optional)
	MasterKey string `json:"masterKey,omitempty"`
	// HTTP verb of the request to sign
	Verb *string `json:"verb"`
	// Cosmos resource type, e.g. "colls"
	ResourceType *string `json:"resourceType"`
	// Cosmos resource id, e.g. "dbs/MyDatabase/colls/MyCollection"
	ResourceID *string `json:"resourceId"`
	// Optional fixed RFC1123 GMT date, current time when omitted
	Date string `json:"date,omitempty"`
}

// Validate validates this post sign payload.
func (p *PostSignPayload) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("verb", "body", p.Verb); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("resourceType", "body", p.ResourceType); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("resourceId", "body", p.ResourceID); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return openapierrors.CompositeValidationError(res...)
	}

	return nil
}

// PostSignResponse is the result of POST /api/v1/cosmos/sign.
type PostSignResponse struct {
	// Percent-encoded authorization header value
	Authorization *string `json:"authorization"`
	// Value for the x-ms-date header
	Date *string `json:"date"`
	// Account used to resolve the master key, if any
	AccountID string `json:"accountId,omitempty"`
}

// Validate validates this post sign response.
func (p *PostSignResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("authorization", "body", p.Authorization); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("date", "body", p.Date); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return openapierrors.CompositeValidationError(res...)
	}

	return nil
}
