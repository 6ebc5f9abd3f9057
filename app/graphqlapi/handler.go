package graphqlapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

const (
	QueryPath        = "/query"
	SubscriptionPath = "/subscriptions"

	logMsgSubscriptionStarted = "graphql subscription started"
	logMsgSubscriptionEnded   = "graphql subscription ended"
	logMsgSubscriptionFailed  = "graphql subscription failed"
	logMsgWriteFailed         = "graphql subscription write failed"
	logAttrOperationName      = "operation_name"
	logAttrMessages           = "messages"
)

var (
	// ErrInvalidSubscriptionRequest is returned for subscription requests that cannot be decoded.
	ErrInvalidSubscriptionRequest = errors.New("invalid subscription request")

	// ErrMissingSubscriptionQuery is returned for subscription requests without query.
	ErrMissingSubscriptionQuery = errors.New("missing subscription query")
)

// NewHandler returns the HTTP handler serving QueryPath and SubscriptionPath.
func NewHandler(schema *graphql.Schema, obs catalog.Observability) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(QueryPath, &relay.Handler{Schema: schema})
	mux.Handle(SubscriptionPath, &SubscriptionHandler{schema: schema, obs: obs})

	return mux
}

type subscriptionParams struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// SubscriptionHandler streams subscription results as server-sent events.
//
// The operation is taken from a JSON body on POST or from the query, operationName and
// variables URL parameters on GET. Every result is sent as a "next" event, the stream ends
// with a "complete" event.
type SubscriptionHandler struct {
	schema *graphql.Schema
	obs    catalog.Observability
}

func (h *SubscriptionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)

		return
	}

	params, err := readSubscriptionParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()

	responses, err := h.schema.Subscribe(ctx, params.Query, params.OperationName, params.Variables)
	if err != nil {
		h.obs.LogError(ctx, logMsgSubscriptionFailed, err, logAttrOperationName, params.OperationName)
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.obs.LogInfo(ctx, logMsgSubscriptionStarted, logAttrOperationName, params.OperationName)

	messages := h.stream(ctx, w, flusher, responses)

	h.obs.LogInfo(ctx, logMsgSubscriptionEnded,
		logAttrOperationName, params.OperationName,
		logAttrMessages, messages)
}

func (h *SubscriptionHandler) stream(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, responses <-chan any) int {
	messages := 0

	for response := range responses {
		payload, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(response)
		if err != nil {
			h.obs.LogError(ctx, logMsgWriteFailed, err)
			continue
		}

		if _, err = fmt.Fprintf(w, "event: next\ndata: %s\n\n", payload); err != nil {
			h.obs.LogError(ctx, logMsgWriteFailed, err)
			return messages
		}

		flusher.Flush()
		messages++
	}

	_, _ = fmt.Fprint(w, "event: complete\ndata:\n\n")
	flusher.Flush()

	return messages
}

func readSubscriptionParams(r *http.Request) (subscriptionParams, error) {
	var params subscriptionParams

	if r.Method == http.MethodPost {
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(r.Body).Decode(&params); err != nil {
			return subscriptionParams{}, errors.Join(ErrInvalidSubscriptionRequest, err)
		}
	} else {
		query := r.URL.Query()
		params.Query = query.Get("query")
		params.OperationName = query.Get("operationName")

		if raw := query.Get("variables"); raw != "" {
			if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(raw, &params.Variables); err != nil {
				return subscriptionParams{}, errors.Join(ErrInvalidSubscriptionRequest, err)
			}
		}
	}

	if params.Query == "" {
		return subscriptionParams{}, ErrMissingSubscriptionQuery
	}

	return params, nil
}
