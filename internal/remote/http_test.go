package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avolkovs/staffdir/internal/logging"
	"github.com/avolkovs/staffdir/internal/models"
)

func testRecords() []models.Employee {
	return []models.Employee{
		{ID: 1, FirstName: "Ayşe", LastName: "Yılmaz", EmploymentDate: "23/01/2022", BirthDate: "14/05/1990",
			Phone: "+(90) 531 982 44 11", Email: "ayse@acme.com", Department: "Tech", Position: "Senior"},
		{ID: 2, FirstName: "Mehmet", LastName: "Demir", EmploymentDate: "01/03/2021", BirthDate: "02/11/1994",
			Phone: "+(90) 542 113 22 33", Email: "mehmet@acme.com", Department: "Analytics", Position: "Junior"},
	}
}

func newClient(t *testing.T, url string) *HTTPClient {
	t.Helper()
	return NewHTTPClient(url, 2*time.Second, NewExporter(t.TempDir()), logging.NewNop())
}

func TestLoadAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.NoError(t, json.NewEncoder(w).Encode(testRecords()))
	}))
	defer srv.Close()

	list, err := newClient(t, srv.URL).LoadAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, testRecords(), list)
}

func TestLoadAllBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).LoadAll(context.Background())
	require.ErrorIs(t, err, ErrLoad)
}

func TestLoadAllBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).LoadAll(context.Background())
	require.ErrorIs(t, err, ErrLoad)
}

func TestLoadAllRetriesServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(testRecords()))
	}))
	defer srv.Close()

	list, err := newClient(t, srv.URL).LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, 3, calls)
}

func TestReplaceAll(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = body
	}))
	defer srv.Close()

	ack, err := newClient(t, srv.URL).ReplaceAll(context.Background(), testRecords())
	require.NoError(t, err)
	require.True(t, ack.Durable)
	require.Empty(t, ack.ExportPath)

	var sent []models.Employee
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	require.Equal(t, testRecords(), sent)
}

func TestReplaceAllFallsBackToExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewHTTPClient(srv.URL, 2*time.Second, NewExporter(dir), logging.NewNop())

	ack, err := c.ReplaceAll(context.Background(), testRecords())
	require.NoError(t, err, "a failed replace is recovered, not surfaced")
	require.False(t, ack.Durable)
	require.Equal(t, filepath.Join(dir, ExportFileName), ack.ExportPath)

	data, err := os.ReadFile(ack.ExportPath)
	require.NoError(t, err)
	var exported []models.Employee
	require.NoError(t, json.Unmarshal(data, &exported))
	require.Equal(t, testRecords(), exported)
}

func TestReplaceAllUnreachableServer(t *testing.T) {
	dir := t.TempDir()
	c := NewHTTPClient("http://127.0.0.1:1/users.json", time.Second, NewExporter(dir), logging.NewNop())

	ack, err := c.ReplaceAll(context.Background(), testRecords())
	require.NoError(t, err)
	require.False(t, ack.Durable)
	require.FileExists(t, ack.ExportPath)
}

func TestExporterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	path, err := NewExporter(dir).Write([]byte("[]"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, ExportFileName), path)
	require.FileExists(t, path)
}
