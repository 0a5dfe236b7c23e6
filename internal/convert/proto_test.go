package convert

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	pb "github.com/and161185/ijazah-ledger/gen/go/ijazah/v1"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

var (
	owner  = common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	issuer = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

func TestToProtoDiploma_ActiveOmitsRevocation(t *testing.T) {
	t.Parallel()
	d := model.Diploma{ID: 1, Owner: owner, Issuer: issuer, DocumentHash: "0xab", CID: "bafy", IsActive: true,
		IssuedAt: time.Unix(1700000000, 0).UTC()}
	w := ToProtoDiploma(d)
	require.Nil(t, w.GetRevokedAt())
	require.Empty(t, w.GetRevokedBy())
	require.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", w.GetOwner())
	require.Equal(t, int64(1700000000), w.GetTimestamp().GetSeconds())

	// survives the binary wire format
	b, err := proto.Marshal(w)
	require.NoError(t, err)
	var wire pb.Diploma
	require.NoError(t, proto.Unmarshal(b, &wire))

	back, err := FromProtoDiploma(&wire)
	require.NoError(t, err)
	require.Equal(t, d, back)
	require.True(t, back.RevokedAt.IsZero())
}

func TestFromProtoDiploma_RevokedKeepsAudit(t *testing.T) {
	t.Parallel()
	at := time.Unix(1700000500, 0).UTC()
	d := model.Diploma{ID: 2, Owner: owner, Issuer: issuer, IsActive: false, RevocationReason: "forged",
		RevokedAt: at, RevokedBy: issuer}
	w := ToProtoDiploma(d)
	require.Equal(t, at, w.GetRevokedAt().AsTime())

	back, err := FromProtoDiploma(w)
	require.NoError(t, err)
	require.Equal(t, at, back.RevokedAt)
	require.Equal(t, issuer, back.RevokedBy)
	require.Equal(t, model.StatusRevoked, back.Status())

	w.Owner = "not-an-address"
	_, err = FromProtoDiploma(w)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = FromProtoDiploma(nil)
	require.Error(t, err)
	require.Len(t, ToProtoDiplomas([]model.Diploma{d, d}), 2)
}

func TestFromProtoIssueRequest(t *testing.T) {
	t.Parallel()
	_, err := FromProtoIssueRequest(nil)
	require.Error(t, err)

	_, err = FromProtoIssueRequest(&pb.IssueDiplomaRequest{Recipient: "0x123"})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	in := model.NewDiploma{Recipient: owner, DocumentHash: "0xab", CID: "bafy", StudentName: "A", NIM: "1"}
	got, err := FromProtoIssueRequest(ToProtoIssueRequest(in))
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestToProtoEvent_DiplomaIDOnlyForDiplomaKinds(t *testing.T) {
	t.Parallel()
	ev := model.LedgerEvent{Seq: 4, Kind: model.EventDiplomaRevoked, Subject: "9", Actor: issuer,
		Payload: []byte(`{"reason":"forged"}`), Status: model.StatusRevoked, CreatedAt: time.Unix(1700000000, 0).UTC()}
	w := ToProtoEvent(ev)
	require.NotNil(t, w.DiplomaId)
	require.Equal(t, uint64(9), w.GetDiplomaId())
	require.Equal(t, uint64(4), w.GetBlock())
	require.JSONEq(t, `{"reason":"forged"}`, w.GetPayload())

	role := ToProtoEvent(model.LedgerEvent{Kind: model.EventIssuerAdded, Subject: owner.Hex(), Actor: issuer})
	require.Nil(t, role.DiplomaId)
	require.Nil(t, role.GetTimestamp())

	back, err := FromProtoEvent(w)
	require.NoError(t, err)
	require.Equal(t, ev, back)
	require.Len(t, ToProtoEvents([]model.LedgerEvent{ev}), 1)
}

func TestInfoAndSession(t *testing.T) {
	t.Parallel()
	info := model.LedgerInfo{ContractAddress: owner, Admin: issuer, ChainID: 1337, Network: "ganache",
		IssuerRoleHash: "0xrole", TotalDiplomas: 3, CreatedAt: time.Unix(1700000000, 0).UTC()}
	got, err := FromProtoInfo(ToProtoInfo(info))
	require.NoError(t, err)
	require.Equal(t, info, got)

	now := time.Unix(1700000000, 0).UTC()
	s := model.Session{Address: owner, IsIssuer: true, AuthenticatedAt: now, ExpiresAt: now.Add(24 * time.Hour), Token: "t"}
	gs, err := FromProtoSession(ToProtoSession(s))
	require.NoError(t, err)
	require.Equal(t, s, gs)

	c := model.Challenge{ID: uuid.Must(uuid.NewV4()), Address: owner, Message: "m", ExpiresAt: now}
	wc := ToProtoChallenge(c)
	require.Equal(t, c.ID.String(), wc.GetChallengeId())
	gc, err := FromProtoChallenge(wc, owner)
	require.NoError(t, err)
	require.Equal(t, c, gc)

	_, err = FromProtoChallenge(&pb.ChallengeResponse{ChallengeId: "nope"}, owner)
	require.Error(t, err)
}
