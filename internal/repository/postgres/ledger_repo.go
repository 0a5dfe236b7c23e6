package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"

	pkgcrypto "github.com/and161185/ijazah-ledger/internal/crypto"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

// Page bounds for list queries.
const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// LedgerRepo implements LedgerRepository using PostgreSQL.
type LedgerRepo struct{ db *DB }

// NewLedgerRepo constructs a ledger repository.
func NewLedgerRepo(db *DB) *LedgerRepo { return &LedgerRepo{db: db} }

type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type scanner interface {
	Scan(dest ...any) error
}

// head is the locked ledger_meta row: the next diploma id and event sequence.
type head struct {
	nextID   int64
	nextSeq  int64
	contract common.Address
}

const (
	lockHeadSQL = `SELECT next_id, next_seq, contract_address FROM ledger_meta FOR UPDATE`
	bumpMintSQL = `UPDATE ledger_meta SET next_id = next_id + 1, next_seq = next_seq + 1`
	bumpSeqSQL  = `UPDATE ledger_meta SET next_seq = next_seq + 1`
	selRolesSQL = `SELECT role FROM roles WHERE address=$1 ORDER BY role`
	insEventSQL = `
INSERT INTO ledger_events (seq, tx_hash, kind, subject, actor, payload, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	grantSQL      = `INSERT INTO roles (address, role, granted_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`
	revokeRoleSQL = `DELETE FROM roles WHERE address=$1 AND role=$2`
	diplomaCols   = `id, owner, issuer, document_hash, cid, signature, student_name, nim, issued_at, is_active, revocation_reason, revoked_at, revoked_by`
)

func lockHead(ctx context.Context, tx pgx.Tx) (head, error) {
	var (
		h        head
		contract string
	)
	if err := tx.QueryRow(ctx, lockHeadSQL).Scan(&h.nextID, &h.nextSeq, &contract); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return head{}, ErrUninitialized
		}
		return head{}, err
	}
	h.contract = common.HexToAddress(contract)
	return h, nil
}

func loadRoles(ctx context.Context, q queryer, account common.Address) ([]model.Role, error) {
	rows, err := q.Query(ctx, selRolesSQL, account.Hex())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Role
	for rows.Next() {
		var r string
		if err := rows.Scan(&r); err != nil {
			return nil, err
		}
		out = append(out, model.Role(r))
	}
	return out, rows.Err()
}

func checkCapability(ctx context.Context, tx pgx.Tx, caller common.Address, want model.Capability) error {
	roles, err := loadRoles(ctx, tx, caller)
	if err != nil {
		return err
	}
	if !model.CapabilitiesOf(roles...).Has(want) {
		return errs.ErrUnauthorized
	}
	return nil
}

func appendEvent(
	ctx context.Context, tx pgx.Tx, h head, kind model.EventKind, subject string, actor common.Address, body any, now time.Time,
) (model.LedgerEvent, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return model.LedgerEvent{}, err
	}
	seq := uint64(h.nextSeq)
	ev := model.LedgerEvent{
		Seq:       seq,
		TxHash:    pkgcrypto.TxHash(h.contract, seq, string(kind), payload),
		Kind:      kind,
		Subject:   subject,
		Actor:     actor,
		Payload:   payload,
		CreatedAt: now,
	}
	if _, err := tx.Exec(ctx, insEventSQL, h.nextSeq, ev.TxHash, string(kind), subject, actor.Hex(), payload, now); err != nil {
		return model.LedgerEvent{}, err
	}
	return ev, nil
}

// Bootstrap inserts the singleton meta row on first start and grants the admin
// both admin and issuer roles. Later calls return the stored genesis unchanged.
func (r *LedgerRepo) Bootstrap(ctx context.Context, g model.LedgerInfo) (info model.LedgerInfo, err error) {
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		const ins = `
INSERT INTO ledger_meta (contract_address, admin, chain_id, network, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT DO NOTHING`
		tag, err := tx.Exec(ctx, ins, g.ContractAddress.Hex(), g.Admin.Hex(), int64(g.ChainID), g.Network, g.CreatedAt)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 1 {
			for _, role := range []model.Role{model.RoleAdmin, model.RoleIssuer} {
				if _, err := tx.Exec(ctx, grantSQL, g.Admin.Hex(), string(role), g.CreatedAt); err != nil {
					return err
				}
			}
		}
		info, err = scanInfo(tx.QueryRow(ctx, selInfoSQL))
		return err
	})
	if err != nil {
		return model.LedgerInfo{}, err
	}
	return info, nil
}

const selInfoSQL = `SELECT contract_address, admin, chain_id, network, created_at, next_id FROM ledger_meta`

func scanInfo(row scanner) (model.LedgerInfo, error) {
	var (
		contract, admin string
		chainID, total  int64
		info            model.LedgerInfo
	)
	if err := row.Scan(&contract, &admin, &chainID, &info.Network, &info.CreatedAt, &total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LedgerInfo{}, ErrUninitialized
		}
		return model.LedgerInfo{}, err
	}
	info.ContractAddress = common.HexToAddress(contract)
	info.Admin = common.HexToAddress(admin)
	info.ChainID = uint64(chainID)
	info.TotalDiplomas = uint64(total)
	info.IssuerRoleHash = pkgcrypto.IssuerRoleHash()
	return info, nil
}

// Info returns the ledger instance metadata.
func (r *LedgerRepo) Info(ctx context.Context) (model.LedgerInfo, error) {
	return scanInfo(r.db.Pool.QueryRow(ctx, selInfoSQL))
}

// Mint allocates the next id and records a new active diploma.
func (r *LedgerRepo) Mint(
	ctx context.Context, caller common.Address, in model.NewDiploma, now time.Time,
) (d model.Diploma, ev model.LedgerEvent, err error) {
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		h, err := lockHead(ctx, tx)
		if err != nil {
			return err
		}
		if err := checkCapability(ctx, tx, caller, model.CanMint); err != nil {
			return err
		}
		d = model.Diploma{
			ID:           uint64(h.nextID),
			Owner:        in.Recipient,
			Issuer:       caller,
			DocumentHash: in.DocumentHash,
			CID:          in.CID,
			Signature:    in.Signature,
			StudentName:  in.StudentName,
			NIM:          in.NIM,
			IssuedAt:     now,
			IsActive:     true,
		}
		const ins = `
INSERT INTO diplomas (id, owner, issuer, document_hash, cid, signature, student_name, nim, issued_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		if _, err := tx.Exec(ctx, ins, h.nextID, d.Owner.Hex(), d.Issuer.Hex(), d.DocumentHash, d.CID,
			d.Signature, d.StudentName, d.NIM, now); err != nil {
			return err
		}
		body := model.DiplomaIssuedBody{
			DiplomaID:    d.ID,
			Recipient:    d.Owner.Hex(),
			Issuer:       d.Issuer.Hex(),
			DocumentHash: d.DocumentHash,
			CID:          d.CID,
			StudentName:  d.StudentName,
			NIM:          d.NIM,
		}
		if ev, err = appendEvent(ctx, tx, h, model.EventDiplomaIssued, strconv.FormatUint(d.ID, 10), caller, body, now); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, bumpMintSQL)
		return err
	})
	if err != nil {
		return model.Diploma{}, model.LedgerEvent{}, err
	}
	ev.Status = model.StatusActive
	return d, ev, nil
}

// Revoke flips an active diploma to revoked and stores the reason.
func (r *LedgerRepo) Revoke(
	ctx context.Context, caller common.Address, id uint64, reason string, now time.Time,
) (ev model.LedgerEvent, err error) {
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		h, err := lockHead(ctx, tx)
		if err != nil {
			return err
		}
		if err := checkCapability(ctx, tx, caller, model.CanRevoke); err != nil {
			return err
		}
		var active bool
		const sel = `SELECT is_active FROM diplomas WHERE id=$1 FOR UPDATE`
		if err := tx.QueryRow(ctx, sel, int64(id)).Scan(&active); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if !active {
			return errs.ErrAlreadyRevoked
		}
		const upd = `
UPDATE diplomas
SET is_active=false, revocation_reason=$2, revoked_at=$3, revoked_by=$4
WHERE id=$1`
		if _, err := tx.Exec(ctx, upd, int64(id), reason, now, caller.Hex()); err != nil {
			return err
		}
		body := model.DiplomaRevokedBody{DiplomaID: id, Revoker: caller.Hex(), Reason: reason}
		if ev, err = appendEvent(ctx, tx, h, model.EventDiplomaRevoked, strconv.FormatUint(id, 10), caller, body, now); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, bumpSeqSQL)
		return err
	})
	if err != nil {
		return model.LedgerEvent{}, err
	}
	ev.Status = model.StatusRevoked
	return ev, nil
}

// Transfer changes the owner of a diploma. Issuer and status are untouched.
func (r *LedgerRepo) Transfer(
	ctx context.Context, caller, to common.Address, id uint64, now time.Time,
) (ev model.LedgerEvent, err error) {
	var active bool
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		h, err := lockHead(ctx, tx)
		if err != nil {
			return err
		}
		var owner string
		const sel = `SELECT owner, is_active FROM diplomas WHERE id=$1 FOR UPDATE`
		if err := tx.QueryRow(ctx, sel, int64(id)).Scan(&owner, &active); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if common.HexToAddress(owner) != caller {
			return errs.ErrUnauthorized
		}
		const upd = `UPDATE diplomas SET owner=$2 WHERE id=$1`
		if _, err := tx.Exec(ctx, upd, int64(id), to.Hex()); err != nil {
			return err
		}
		body := model.TransferBody{DiplomaID: id, From: caller.Hex(), To: to.Hex()}
		if ev, err = appendEvent(ctx, tx, h, model.EventTransfer, strconv.FormatUint(id, 10), caller, body, now); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, bumpSeqSQL)
		return err
	})
	if err != nil {
		return model.LedgerEvent{}, err
	}
	ev.Status = model.StatusRevoked
	if active {
		ev.Status = model.StatusActive
	}
	return ev, nil
}

// SetIssuer grants (grant=true) or removes the issuer role of account.
func (r *LedgerRepo) SetIssuer(
	ctx context.Context, caller, account common.Address, grant bool, now time.Time,
) (changed bool, ev *model.LedgerEvent, err error) {
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		h, err := lockHead(ctx, tx)
		if err != nil {
			return err
		}
		if err := checkCapability(ctx, tx, caller, model.CanManageRoles); err != nil {
			return err
		}
		kind := model.EventIssuerAdded
		sql, args := grantSQL, []any{account.Hex(), string(model.RoleIssuer), now}
		if !grant {
			kind = model.EventIssuerRemoved
			sql, args = revokeRoleSQL, []any{account.Hex(), string(model.RoleIssuer)}
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		changed = true
		e, err := appendEvent(ctx, tx, h, kind, account.Hex(), caller, model.RoleBody{Account: account.Hex(), Sender: caller.Hex()}, now)
		if err != nil {
			return err
		}
		ev = &e
		_, err = tx.Exec(ctx, bumpSeqSQL)
		return err
	})
	if err != nil {
		return false, nil, err
	}
	return changed, ev, nil
}

func scanDiploma(row scanner) (*model.Diploma, error) {
	var (
		d                        model.Diploma
		id                       int64
		owner, issuer, revokedBy string
	)
	if err := row.Scan(&id, &owner, &issuer, &d.DocumentHash, &d.CID, &d.Signature, &d.StudentName, &d.NIM,
		&d.IssuedAt, &d.IsActive, &d.RevocationReason, &d.RevokedAt, &revokedBy); err != nil {
		return nil, err
	}
	d.ID = uint64(id)
	d.Owner = common.HexToAddress(owner)
	d.Issuer = common.HexToAddress(issuer)
	if d.IsActive {
		d.RevokedAt = time.Time{}
	} else {
		d.RevokedBy = common.HexToAddress(revokedBy)
	}
	return &d, nil
}

// Get returns a single diploma by id.
func (r *LedgerRepo) Get(ctx context.Context, id uint64) (*model.Diploma, error) {
	q := `SELECT ` + diplomaCols + ` FROM diplomas WHERE id=$1`
	d, err := scanDiploma(r.db.Pool.QueryRow(ctx, q, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// Total returns the number of minted diplomas, zero before bootstrap.
func (r *LedgerRepo) Total(ctx context.Context) (uint64, error) {
	const q = `SELECT next_id FROM ledger_meta`
	var n int64
	if err := r.db.Pool.QueryRow(ctx, q).Scan(&n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return uint64(n), nil
}

// Roles lists the roles held by account.
func (r *LedgerRepo) Roles(ctx context.Context, account common.Address) ([]model.Role, error) {
	return loadRoles(ctx, r.db.Pool, account)
}

func page(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return offset, limit
}

func statusArg(s model.DiplomaStatus) string {
	if s == "" {
		return string(model.StatusAll)
	}
	return string(s)
}

// ListEvents returns public ledger events, newest first, annotated with the
// current status of the referenced diploma.
func (r *LedgerRepo) ListEvents(ctx context.Context, f model.EventFilter) ([]model.LedgerEvent, error) {
	const q = `
SELECT e.seq, e.tx_hash, e.kind, e.subject, e.actor, e.payload, e.created_at,
       CASE WHEN d.id IS NULL THEN '' WHEN d.is_active THEN 'active' ELSE 'revoked' END
FROM ledger_events e
LEFT JOIN diplomas d
       ON e.kind IN ('DiplomaIssued', 'DiplomaRevoked', 'Transfer') AND d.id::text = e.subject
WHERE ($1 = 'all' OR ($1 = 'active' AND d.is_active) OR ($1 = 'revoked' AND NOT d.is_active))
  AND ($2 = '' OR e.tx_hash ILIKE '%' || $2 || '%' OR e.subject = $2 OR e.seq::text = $2
       OR d.nim = $2 OR d.student_name ILIKE '%' || $2 || '%')
ORDER BY e.seq DESC
OFFSET $3 LIMIT $4`
	offset, limit := page(f.Offset, f.Limit)
	rows, err := r.db.Pool.Query(ctx, q, statusArg(f.Status), f.Query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.LedgerEvent
	for rows.Next() {
		var (
			ev                  model.LedgerEvent
			seq                 int64
			kind, actor, status string
		)
		if err := rows.Scan(&seq, &ev.TxHash, &kind, &ev.Subject, &actor, &ev.Payload, &ev.CreatedAt, &status); err != nil {
			return nil, err
		}
		ev.Seq = uint64(seq)
		ev.Kind = model.EventKind(kind)
		ev.Actor = common.HexToAddress(actor)
		ev.Status = model.DiplomaStatus(status)
		out = append(out, ev)
	}
	return out, rows.Err()
}

// ListDiplomas returns records matching the filter, newest first.
func (r *LedgerRepo) ListDiplomas(ctx context.Context, f model.DiplomaFilter) ([]model.Diploma, error) {
	q := `
SELECT ` + diplomaCols + `
FROM diplomas
WHERE ($1 = '' OR owner = $1)
  AND ($2 = 'all' OR ($2 = 'active' AND is_active) OR ($2 = 'revoked' AND NOT is_active))
  AND ($3 = '' OR id::text = $3 OR nim = $3 OR cid = $3 OR student_name ILIKE '%' || $3 || '%')
ORDER BY id DESC
OFFSET $4 LIMIT $5`
	owner := ""
	if f.Owner != (common.Address{}) {
		owner = f.Owner.Hex()
	}
	offset, limit := page(f.Offset, f.Limit)
	rows, err := r.db.Pool.Query(ctx, q, owner, statusArg(f.Status), f.Query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Diploma
	for rows.Next() {
		d, err := scanDiploma(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}
