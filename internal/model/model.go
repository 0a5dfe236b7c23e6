// Package model defines domain entities used by services, repositories and clients.
package model

import (
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// MaxReasonLen is the maximum revocation reason length in characters.
const MaxReasonLen = 500

// Diploma is a single credential record on the ledger.
type Diploma struct {
	ID               uint64         // dense, sequential from 0
	Owner            common.Address // current holder, changed only by transfer
	Issuer           common.Address // minting account, immutable
	DocumentHash     string         // "0x" + 64 lowercase hex of SHA-256(plaintext)
	CID              string         // storage locator of the ciphertext
	Signature        string         // issuer's signature over issuance metadata (audit only)
	StudentName      string
	NIM              string
	IssuedAt         time.Time
	IsActive         bool
	RevocationReason string // empty while active
	RevokedAt        time.Time
	RevokedBy        common.Address
}

// Status reports the lifecycle state of the record.
func (d Diploma) Status() DiplomaStatus {
	if d.IsActive {
		return StatusActive
	}
	return StatusRevoked
}

// NewDiploma is a mint intent validated by the ledger service.
type NewDiploma struct {
	Recipient    common.Address
	DocumentHash string
	CID          string
	Signature    string
	StudentName  string
	NIM          string
}

// DiplomaStatus is the lifecycle filter/state of a record.
type DiplomaStatus string

const (
	StatusAll     DiplomaStatus = "all"
	StatusActive  DiplomaStatus = "active"
	StatusRevoked DiplomaStatus = "revoked"
)

// ParseStatus maps a user supplied filter to a status, defaulting to all.
func ParseStatus(s string) (DiplomaStatus, bool) {
	switch DiplomaStatus(s) {
	case "", StatusAll:
		return StatusAll, true
	case StatusActive:
		return StatusActive, true
	case StatusRevoked:
		return StatusRevoked, true
	}
	return "", false
}

// EventKind names an append-only ledger event.
type EventKind string

const (
	EventDiplomaIssued  EventKind = "DiplomaIssued"
	EventDiplomaRevoked EventKind = "DiplomaRevoked"
	EventTransfer       EventKind = "Transfer"
	EventIssuerAdded    EventKind = "IssuerAdded"
	EventIssuerRemoved  EventKind = "IssuerRemoved"
)

// LedgerEvent is one committed state change. Seq plays the role of a block number.
type LedgerEvent struct {
	Seq       uint64
	TxHash    string
	Kind      EventKind
	Subject   string // diploma id (decimal) or account address
	Actor     common.Address
	Payload   []byte // canonical JSON of the event body
	CreatedAt time.Time
	Status    DiplomaStatus // current status of the referenced diploma, empty for role events
}

// DiplomaID returns the referenced diploma id for diploma events.
func (e LedgerEvent) DiplomaID() (uint64, bool) {
	switch e.Kind {
	case EventDiplomaIssued, EventDiplomaRevoked, EventTransfer:
		id, err := strconv.ParseUint(e.Subject, 10, 64)
		return id, err == nil
	}
	return 0, false
}

// DiplomaIssuedBody is the payload of EventDiplomaIssued.
type DiplomaIssuedBody struct {
	DiplomaID    uint64 `json:"diplomaId"`
	Recipient    string `json:"recipient"`
	Issuer       string `json:"issuer"`
	DocumentHash string `json:"documentHash"`
	CID          string `json:"cid"`
	StudentName  string `json:"studentName"`
	NIM          string `json:"nim"`
}

// DiplomaRevokedBody is the payload of EventDiplomaRevoked.
type DiplomaRevokedBody struct {
	DiplomaID uint64 `json:"diplomaId"`
	Revoker   string `json:"revoker"`
	Reason    string `json:"reason"`
}

// TransferBody is the payload of EventTransfer.
type TransferBody struct {
	DiplomaID uint64 `json:"diplomaId"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// RoleBody is the payload of EventIssuerAdded and EventIssuerRemoved.
type RoleBody struct {
	Account string `json:"account"`
	Sender  string `json:"sender"`
}

// EventFilter selects public ledger events.
type EventFilter struct {
	Status DiplomaStatus
	Query  string // tx hash substring, diploma id, block number, NIM or name
	Offset int
	Limit  int
}

// DiplomaFilter selects records for dashboards.
type DiplomaFilter struct {
	Owner  common.Address // zero means any owner
	Status DiplomaStatus
	Query  string // id, NIM, CID or name substring
	Offset int
	Limit  int
}

// LedgerInfo describes the ledger instance (the "deployed contract").
type LedgerInfo struct {
	ContractAddress common.Address
	Admin           common.Address
	ChainID         uint64
	Network         string
	IssuerRoleHash  string
	CreatedAt       time.Time
	TotalDiplomas   uint64
}
