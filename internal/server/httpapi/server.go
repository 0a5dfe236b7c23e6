// Package httpapi serves the document storage API, the public ledger
// listing and its live websocket feed.
package httpapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "github.com/and161185/ijazah-ledger/gen/go/ijazah/v1"
	"github.com/and161185/ijazah-ledger/internal/convert"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
	"github.com/and161185/ijazah-ledger/internal/storage"
)

// DefaultMaxUploadBytes caps upload request bodies.
const DefaultMaxUploadBytes int64 = 25 << 20

const (
	wsWriteWait  = 10 * time.Second
	wsPingPeriod = 30 * time.Second
)

// LedgerReader lists public ledger events.
type LedgerReader interface {
	ListEvents(ctx context.Context, f model.EventFilter) ([]model.LedgerEvent, error)
}

// Feed hands out live event subscriptions.
type Feed interface {
	Subscribe() (<-chan model.LedgerEvent, func())
}

// Server holds the HTTP handlers.
type Server struct {
	store    storage.Store
	ledger   LedgerReader
	feed     Feed
	log      *zap.Logger
	maxBody  int64
	upgrader websocket.Upgrader
}

// New builds the HTTP API. maxBody <= 0 selects DefaultMaxUploadBytes.
func New(store storage.Store, ledger LedgerReader, feed Feed, log *zap.Logger, maxBody int64) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if maxBody <= 0 {
		maxBody = DefaultMaxUploadBytes
	}
	return &Server{
		store:   store,
		ledger:  ledger,
		feed:    feed,
		log:     log,
		maxBody: maxBody,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler returns the routed handler wrapped in access logging.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/upload", s.handleUpload).Methods(http.MethodPost)
	r.HandleFunc("/api/files/{cid:.+}", s.handleFile).Methods(http.MethodGet)
	r.HandleFunc("/api/ledger", s.handleLedger).Methods(http.MethodGet)
	r.HandleFunc("/api/ledger/ws", s.handleLedgerWS).Methods(http.MethodGet)
	r.Use(s.accessLog)
	return r
}

type uploadRequest struct {
	Data     string `json:"data"`
	Filename string `json:"filename"`
}

type uploadResponse struct {
	CID     string `json:"cid"`
	Message string `json:"message"`
}

type fileResponse struct {
	Data     string            `json:"data"`
	Storage  string            `json:"storage"`
	Metadata *storage.Metadata `json:"metadata,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// wireJSON renders protobuf messages with their lowerCamel JSON names.
var wireJSON = protojson.MarshalOptions{EmitUnpopulated: true}

func writeProto(w http.ResponseWriter, code int, m proto.Message) {
	b, err := wireJSON.Marshal(m)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrStorageUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Data == "" {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		writeError(w, http.StatusBadRequest, "data must be base64")
		return
	}
	filename := path.Base(strings.ReplaceAll(strings.TrimSpace(req.Filename), `\`, "/"))
	if filename == "." || filename == "/" || filename == "" {
		filename = "unknown"
	}

	cid, err := s.store.Put(r.Context(), data, filename)
	if err != nil {
		s.log.Error("upload failed", zap.String("filename", filename), zap.Error(err))
		writeError(w, statusFor(err), "Upload failed")
		return
	}
	s.log.Info("file uploaded", zap.String("cid", cid), zap.Int("size", len(data)))
	writeJSON(w, http.StatusOK, uploadResponse{CID: cid, Message: "File uploaded successfully"})
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	cid := mux.Vars(r)["cid"]
	obj, err := s.store.Get(r.Context(), cid)
	if err != nil {
		code := statusFor(err)
		switch code {
		case http.StatusNotFound:
			writeError(w, code, "File not found")
		case http.StatusBadRequest:
			writeError(w, code, "invalid cid")
		default:
			s.log.Error("download failed", zap.String("cid", cid), zap.Error(err))
			writeError(w, code, "Failed to retrieve file")
		}
		return
	}
	writeJSON(w, http.StatusOK, fileResponse{
		Data:     base64.StdEncoding.EncodeToString(obj.Data),
		Storage:  obj.Backend,
		Metadata: obj.Metadata,
	})
}

func queryInt(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New("not a non-negative integer")
	}
	return n, nil
}

func parseEventFilter(r *http.Request) (model.EventFilter, error) {
	q := r.URL.Query()
	st, ok := model.ParseStatus(q.Get("status"))
	if !ok {
		return model.EventFilter{}, errors.New("bad status")
	}
	f := model.EventFilter{Status: st, Query: strings.TrimSpace(q.Get("q"))}
	var err error
	if f.Offset, err = queryInt(q.Get("offset")); err != nil {
		return model.EventFilter{}, errors.New("bad offset")
	}
	if f.Limit, err = queryInt(q.Get("limit")); err != nil {
		return model.EventFilter{}, errors.New("bad limit")
	}
	return f, nil
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	f, err := parseEventFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	evs, err := s.ledger.ListEvents(r.Context(), f)
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			s.log.Error("list events failed", zap.Error(err))
			writeError(w, code, "internal")
			return
		}
		writeError(w, code, err.Error())
		return
	}
	writeProto(w, http.StatusOK, &pb.ListEventsResponse{Events: convert.ToProtoEvents(evs)})
}

// handleLedgerWS streams every newly committed event as a JSON text frame.
func (s *Server) handleLedgerWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	events, cancel := s.feed.Subscribe()
	defer cancel()

	// drain client frames so close and pong are processed
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()
	for {
		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case ev, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(wsWriteWait))
				return
			}
			b, err := wireJSON.Marshal(convert.ToProtoEvent(ev))
			if err != nil {
				s.log.Error("encode event", zap.Error(err))
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
