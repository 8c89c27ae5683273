package model

type ConnectionStatus string

const (
	ConnectionNone      ConnectionStatus = "none"
	ConnectionConnected ConnectionStatus = "connected"
	ConnectionInvalid   ConnectionStatus = "invalid"
)

// ConnectionState is the recruiter<->client pairing as seen by one party.
// ConnectionID and CompanyName are empty unless Status is connected.
type ConnectionState struct {
	ConnectionID string           `json:"connection_id"`
	CompanyName  string           `json:"company_name"`
	Status       ConnectionStatus `json:"status"`
}

type ConnectionEventType string

const (
	EventConnected    ConnectionEventType = "connected"
	EventDisconnected ConnectionEventType = "disconnected"
)

// ConnectionEvent is pushed over the event stream whenever either party's
// connection changes. The pairing id is never part of the event; a
// connected event only refreshes peer metadata.
type ConnectionEvent struct {
	Event          ConnectionEventType `json:"event"`
	RecruiterName  *string             `json:"recruiter_name,omitempty"`
	CompanyName    *string             `json:"company_name,omitempty"`
	ConnectedCount *int                `json:"connected_count,omitempty"`
}

type ConfirmConnectionReq struct {
	ConnectionID string `json:"connection_id" binding:"required"`
}

type ConfirmConnectionRes struct {
	ClientID    string `json:"client_id"`
	CompanyName string `json:"company_name"`
}

// ClientCompany is the record behind GET /v1/client/by-connection/:id.
type ClientCompany struct {
	ClientID    string `json:"client_id"`
	CompanyName string `json:"company_name"`
}

type ConnectedRecruiter struct {
	ConnectedCount int              `json:"connected_count"`
	Status         ConnectionStatus `json:"status"`
}
