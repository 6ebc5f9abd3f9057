package graphqlapi_test

import (
	"bufio"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookcatalog-go/app/graphqlapi"
	"github.com/AntonStoeckl/bookcatalog-go/catalog"
	"github.com/AntonStoeckl/bookcatalog-go/testutil/observability/testdoubles"
)

func Test_Handler_Query(t *testing.T) {
	server := httptest.NewServer(graphqlapi.NewHandler(newSchema(t), catalog.Observability{}))
	defer server.Close()

	body := `{"query": "{ bookById(id: \"1\") { title } }"}`
	resp, err := http.Post(server.URL+graphqlapi.QueryPath, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data": {"bookById": {"title": "Book1"}}}`, buf.String())
}

func Test_Handler_SubscriptionStreamsServerSentEvents(t *testing.T) {
	// arrange
	logger := testdoubles.NewLoggerSpy()
	server := httptest.NewServer(graphqlapi.NewHandler(newSchema(t), catalog.Observability{Logger: logger}))
	defer server.Close()

	streamCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	target := server.URL + graphqlapi.SubscriptionPath + "?query=" + url.QueryEscape(`subscription { newBook { title } }`)
	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, target, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// act
	mutation := `{"query": "mutation { createBook(book: {title: \"Book4\", authors: []}) { id } }"}`
	created, err := http.Post(server.URL+graphqlapi.QueryPath, "application/json", strings.NewReader(mutation))
	require.NoError(t, err)
	_ = created.Body.Close()

	// assert
	reader := bufio.NewReader(resp.Body)

	eventLine, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: next\n", eventLine)

	dataLine, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": {"newBook": {"title": "Book4"}}}`, strings.TrimPrefix(strings.TrimSpace(dataLine), "data: "))

	assert.True(t, logger.HasLog(testdoubles.LevelInfo, "graphql subscription started"))
}

func Test_Handler_SubscriptionRejectsBadRequests(t *testing.T) {
	handler := graphqlapi.NewHandler(newSchema(t), catalog.Observability{})

	tests := []struct {
		name         string
		method       string
		target       string
		body         string
		expectedCode int
	}{
		{name: "missing query", method: http.MethodGet, target: graphqlapi.SubscriptionPath, expectedCode: http.StatusBadRequest},
		{name: "broken variables", method: http.MethodGet, target: graphqlapi.SubscriptionPath + "?query=x&variables=%7B", expectedCode: http.StatusBadRequest},
		{name: "broken body", method: http.MethodPost, target: graphqlapi.SubscriptionPath, body: `{"query":`, expectedCode: http.StatusBadRequest},
		{name: "wrong method", method: http.MethodDelete, target: graphqlapi.SubscriptionPath, expectedCode: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))

			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}
