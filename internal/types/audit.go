package types

import (
	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// AuditEventResponse is a single audit log entry.
type AuditEventResponse struct {
	Timestamp *strfmt.DateTime       `json:"timestamp"`
	EventType *string                `json:"eventType"`
	Operation *string                `json:"operation"`
	Result    *string                `json:"result"`
	UserID    string                 `json:"userId,omitempty"`
	AccountID string                 `json:"accountId,omitempty"`
	IPAddress string                 `json:"ipAddress,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Validate validates this audit event response.
func (a *AuditEventResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("timestamp", "body", a.Timestamp); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("eventType", "body", a.EventType); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("operation", "body", a.Operation); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("result", "body", a.Result); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return openapierrors.CompositeValidationError(res...)
	}

	return nil
}

// GetAuditLogsResponse is the result of GET /api/v1/cosmos/audit-logs.
type GetAuditLogsResponse struct {
	Events []*AuditEventResponse `json:"events"`
	Total  int64                 `json:"total"`
}

// Validate validates this get audit logs response.
func (g *GetAuditLogsResponse) Validate(formats strfmt.Registry) error {
	var res []error

	for _, e := range g.Events {
		if e == nil {
			continue
		}
		if err := e.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return openapierrors.CompositeValidationError(res...)
	}

	return nil
}
