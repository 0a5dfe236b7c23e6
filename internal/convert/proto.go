// Package convert maps domain models to and from the ijazah.v1 protobuf messages.
package convert

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/ijazah-ledger/gen/go/ijazah/v1"
	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/model"
)

// --- helpers ---

// toTS returns nil for the zero time so unset timestamps stay absent on the wire.
func toTS(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTS(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func addrHex(a common.Address) string {
	if a == (common.Address{}) {
		return ""
	}
	return a.Hex()
}

func optAddr(s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, nil
	}
	return ethsig.ParseAddress(s)
}

// --- Diploma ---

// ToProtoDiploma renders a record for the wire.
func ToProtoDiploma(d model.Diploma) *pb.Diploma {
	return &pb.Diploma{
		Id:               d.ID,
		Owner:            d.Owner.Hex(),
		Issuer:           d.Issuer.Hex(),
		DocumentHash:     d.DocumentHash,
		Cid:              d.CID,
		Signature:        d.Signature,
		StudentName:      d.StudentName,
		Nim:              d.NIM,
		Timestamp:        toTS(d.IssuedAt),
		IsActive:         d.IsActive,
		RevocationReason: d.RevocationReason,
		RevokedAt:        toTS(d.RevokedAt),
		RevokedBy:        addrHex(d.RevokedBy),
	}
}

// FromProtoDiploma parses a wire record.
func FromProtoDiploma(in *pb.Diploma) (model.Diploma, error) {
	if in == nil {
		return model.Diploma{}, fmt.Errorf("nil Diploma")
	}
	owner, err := ethsig.ParseAddress(in.GetOwner())
	if err != nil {
		return model.Diploma{}, fmt.Errorf("owner: %w", err)
	}
	issuer, err := ethsig.ParseAddress(in.GetIssuer())
	if err != nil {
		return model.Diploma{}, fmt.Errorf("issuer: %w", err)
	}
	revokedBy, err := optAddr(in.GetRevokedBy())
	if err != nil {
		return model.Diploma{}, fmt.Errorf("revokedBy: %w", err)
	}
	return model.Diploma{
		ID:               in.GetId(),
		Owner:            owner,
		Issuer:           issuer,
		DocumentHash:     in.GetDocumentHash(),
		CID:              in.GetCid(),
		Signature:        in.GetSignature(),
		StudentName:      in.GetStudentName(),
		NIM:              in.GetNim(),
		IssuedAt:         fromTS(in.GetTimestamp()),
		IsActive:         in.GetIsActive(),
		RevocationReason: in.GetRevocationReason(),
		RevokedAt:        fromTS(in.GetRevokedAt()),
		RevokedBy:        revokedBy,
	}, nil
}

// ToProtoDiplomas converts a slice of records.
func ToProtoDiplomas(ds []model.Diploma) []*pb.Diploma {
	out := make([]*pb.Diploma, 0, len(ds))
	for _, d := range ds {
		out = append(out, ToProtoDiploma(d))
	}
	return out
}

// FromProtoIssueRequest validates addresses of a mint request.
func FromProtoIssueRequest(in *pb.IssueDiplomaRequest) (model.NewDiploma, error) {
	if in == nil {
		return model.NewDiploma{}, fmt.Errorf("nil IssueDiplomaRequest")
	}
	to, err := ethsig.ParseAddress(in.GetRecipient())
	if err != nil {
		return model.NewDiploma{}, fmt.Errorf("recipient: %w", err)
	}
	return model.NewDiploma{
		Recipient:    to,
		DocumentHash: in.GetDocumentHash(),
		CID:          in.GetCid(),
		Signature:    in.GetSignature(),
		StudentName:  in.GetStudentName(),
		NIM:          in.GetNim(),
	}, nil
}

// ToProtoIssueRequest is the client side of FromProtoIssueRequest.
func ToProtoIssueRequest(in model.NewDiploma) *pb.IssueDiplomaRequest {
	return &pb.IssueDiplomaRequest{
		Recipient:    in.Recipient.Hex(),
		DocumentHash: in.DocumentHash,
		Cid:          in.CID,
		Signature:    in.Signature,
		StudentName:  in.StudentName,
		Nim:          in.NIM,
	}
}

// --- Events ---

// ToProtoEvent renders an event for the wire.
func ToProtoEvent(ev model.LedgerEvent) *pb.LedgerEvent {
	out := &pb.LedgerEvent{
		Block:     ev.Seq,
		TxHash:    ev.TxHash,
		Kind:      string(ev.Kind),
		Subject:   ev.Subject,
		Actor:     ev.Actor.Hex(),
		Payload:   string(ev.Payload),
		Timestamp: toTS(ev.CreatedAt),
		Status:    string(ev.Status),
	}
	if id, ok := ev.DiplomaID(); ok {
		out.DiplomaId = &id
	}
	return out
}

// ToProtoEvents converts a slice of events.
func ToProtoEvents(evs []model.LedgerEvent) []*pb.LedgerEvent {
	out := make([]*pb.LedgerEvent, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ToProtoEvent(ev))
	}
	return out
}

// FromProtoEvent parses a wire event.
func FromProtoEvent(in *pb.LedgerEvent) (model.LedgerEvent, error) {
	if in == nil {
		return model.LedgerEvent{}, fmt.Errorf("nil LedgerEvent")
	}
	actor, err := optAddr(in.GetActor())
	if err != nil {
		return model.LedgerEvent{}, fmt.Errorf("actor: %w", err)
	}
	ev := model.LedgerEvent{
		Seq:       in.GetBlock(),
		TxHash:    in.GetTxHash(),
		Kind:      model.EventKind(in.GetKind()),
		Subject:   in.GetSubject(),
		Actor:     actor,
		CreatedAt: fromTS(in.GetTimestamp()),
		Status:    model.DiplomaStatus(in.GetStatus()),
	}
	if p := in.GetPayload(); p != "" {
		ev.Payload = []byte(p)
	}
	return ev, nil
}

// --- Info ---

// ToProtoInfo renders ledger metadata.
func ToProtoInfo(i model.LedgerInfo) *pb.InfoResponse {
	return &pb.InfoResponse{
		ContractAddress: i.ContractAddress.Hex(),
		Admin:           i.Admin.Hex(),
		ChainId:         i.ChainID,
		Network:         i.Network,
		IssuerRoleHash:  i.IssuerRoleHash,
		TotalDiplomas:   i.TotalDiplomas,
		DeployedAt:      toTS(i.CreatedAt),
	}
}

// FromProtoInfo parses ledger metadata.
func FromProtoInfo(in *pb.InfoResponse) (model.LedgerInfo, error) {
	contract, err := ethsig.ParseAddress(in.GetContractAddress())
	if err != nil {
		return model.LedgerInfo{}, fmt.Errorf("contractAddress: %w", err)
	}
	admin, err := ethsig.ParseAddress(in.GetAdmin())
	if err != nil {
		return model.LedgerInfo{}, fmt.Errorf("admin: %w", err)
	}
	return model.LedgerInfo{
		ContractAddress: contract,
		Admin:           admin,
		ChainID:         in.GetChainId(),
		Network:         in.GetNetwork(),
		IssuerRoleHash:  in.GetIssuerRoleHash(),
		CreatedAt:       fromTS(in.GetDeployedAt()),
		TotalDiplomas:   in.GetTotalDiplomas(),
	}, nil
}

// --- Auth ---

// ToProtoChallenge renders a login challenge.
func ToProtoChallenge(c model.Challenge) *pb.ChallengeResponse {
	return &pb.ChallengeResponse{ChallengeId: c.ID.String(), Message: c.Message, ExpiresAt: toTS(c.ExpiresAt)}
}

// FromProtoChallenge parses a login challenge issued for account.
func FromProtoChallenge(in *pb.ChallengeResponse, account common.Address) (model.Challenge, error) {
	id, err := uuid.FromString(in.GetChallengeId())
	if err != nil {
		return model.Challenge{}, fmt.Errorf("challengeId: %w", err)
	}
	return model.Challenge{ID: id, Address: account, Message: in.GetMessage(), ExpiresAt: fromTS(in.GetExpiresAt())}, nil
}

// ToProtoSession renders an authenticated session.
func ToProtoSession(s model.Session) *pb.LoginResponse {
	return &pb.LoginResponse{
		AccessToken:     s.Token,
		Address:         s.Address.Hex(),
		IsIssuer:        s.IsIssuer,
		AuthenticatedAt: toTS(s.AuthenticatedAt),
		ExpiresAt:       toTS(s.ExpiresAt),
	}
}

// FromProtoSession parses a login response.
func FromProtoSession(in *pb.LoginResponse) (model.Session, error) {
	addr, err := ethsig.ParseAddress(in.GetAddress())
	if err != nil {
		return model.Session{}, fmt.Errorf("address: %w", err)
	}
	return model.Session{
		Address:         addr,
		IsIssuer:        in.GetIsIssuer(),
		AuthenticatedAt: fromTS(in.GetAuthenticatedAt()),
		ExpiresAt:       fromTS(in.GetExpiresAt()),
		Token:           in.GetAccessToken(),
	}, nil
}
