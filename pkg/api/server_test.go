package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/database"
	"github.com/gianmatteo-arcana/engine-lever/pkg/events"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
	testdb "github.com/gianmatteo-arcana/engine-lever/test/database"
)

type serverFixture struct {
	router     *gin.Engine
	db         *database.Client
	tasks      *services.TaskService
	entries    *services.EntryService
	uiRequests *services.UIRequestService
	broker     *events.Broker
}

func newServerFixture(t *testing.T) *serverFixture {
	db := testdb.NewTestClient(t)
	templates := config.NewTemplateRegistry(map[string]*config.TemplateConfig{
		"business_onboarding": {
			Name:           "Business onboarding",
			InitialPhase:   "initialization",
			Goals:          []string{"Collect and verify the business profile"},
			RequiredFields: []string{"business.legal_name", "business.entity_type", "contact.email"},
		},
	})
	entries := services.NewEntryService(db.Client, nil)
	tasks := services.NewTaskService(db.Client, templates, entries, nil)
	uiRequests := services.NewUIRequestService(db.Client, nil)
	eventService := services.NewEventService(db.Client)
	broker := events.NewBroker(nil)

	auth := NewAuthenticator(map[string]Identity{
		"secret-1": {Subject: "user-1", TenantID: "tenant-1"},
		"secret-2": {Subject: "user-2", TenantID: "tenant-2"},
	})
	server := NewServer(db, tasks, entries, uiRequests, eventService, broker, nil, auth)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	server.RegisterRoutes(router)

	return &serverFixture{
		router:     router,
		db:         db,
		tasks:      tasks,
		entries:    entries,
		uiRequests: uiRequests,
		broker:     broker,
	}
}

func (f *serverFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *serverFixture) createTask(t *testing.T, token string) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/tasks", token, gin.H{
		"template_id": "business_onboarding",
		"initial_data": map[string]any{
			"business": map[string]any{"legal_name": "Acme Corp"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var summary TaskSummary
	require.NoError(t, jsonDecode(rec, &summary))
	return summary.TaskID
}

func TestCreateTaskEndpoint(t *testing.T) {
	f := newServerFixture(t)

	t.Run("creates and returns the summary", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks", "secret-1", gin.H{
			"template_id": "business_onboarding",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var summary TaskSummary
		require.NoError(t, jsonDecode(rec, &summary))
		assert.NotEmpty(t, summary.TaskID)
		assert.Equal(t, "tenant-1", summary.TenantID)
		assert.Equal(t, "active", summary.Status)
		assert.Equal(t, 1, summary.LatestSequence)
	})

	t.Run("missing template_id", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks", "secret-1", gin.H{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown template", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks", "secret-1", gin.H{"template_id": "nope"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate explicit id", func(t *testing.T) {
		body := gin.H{"task_id": "fixed-id", "template_id": "business_onboarding"}
		rec := f.do(t, http.MethodPost, "/api/v1/tasks", "secret-1", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = f.do(t, http.MethodPost, "/api/v1/tasks", "secret-1", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("no credentials", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks", "", gin.H{"template_id": "business_onboarding"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListTasksEndpoint(t *testing.T) {
	f := newServerFixture(t)

	first := f.createTask(t, "secret-1")
	f.createTask(t, "secret-1")
	f.createTask(t, "secret-2")

	_, err := f.entries.Append(context.Background(), models.AppendEntryRequest{
		TaskID:           first,
		ExpectedSequence: -1,
		Actor:            models.SystemActor("dispatcher"),
		Operation:        models.OpTaskFailed,
		Data:             map[string]any{"message": "boom"},
	})
	require.NoError(t, err)

	type listBody struct {
		Tasks  []TaskSummary `json:"tasks"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}

	t.Run("scoped to the caller's tenant", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks", "secret-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body listBody
		require.NoError(t, jsonDecode(rec, &body))
		assert.Equal(t, 2, body.Total)
		assert.Equal(t, 20, body.Limit)
	})

	t.Run("status filter", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks?status=failed", "secret-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body listBody
		require.NoError(t, jsonDecode(rec, &body))
		require.Len(t, body.Tasks, 1)
		assert.Equal(t, first, body.Tasks[0].TaskID)
		assert.Equal(t, "boom", body.Tasks[0].ErrorMessage)
	})

	t.Run("pagination", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks?limit=1&offset=1", "secret-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body listBody
		require.NoError(t, jsonDecode(rec, &body))
		assert.Equal(t, 2, body.Total)
		assert.Len(t, body.Tasks, 1)
	})
}

func TestGetTaskEndpoint(t *testing.T) {
	f := newServerFixture(t)
	taskID := f.createTask(t, "secret-1")

	t.Run("returns the full task context", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/"+taskID, "secret-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var tc models.TaskContext
		require.NoError(t, jsonDecode(rec, &tc))
		assert.Equal(t, taskID, tc.TaskID)
		assert.Equal(t, "Business onboarding", tc.Template.Name)
		assert.Equal(t, models.StatusActive, tc.State.Status)
		assert.Equal(t, 33, tc.State.Completeness)
	})

	t.Run("other tenant gets 404", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/"+taskID, "secret-2", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown task", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/ghost", "secret-1", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListEntriesEndpoint(t *testing.T) {
	f := newServerFixture(t)
	taskID := f.createTask(t, "secret-1")

	for i := 0; i < 3; i++ {
		_, err := f.entries.Append(context.Background(), models.AppendEntryRequest{
			TaskID:           taskID,
			ExpectedSequence: -1,
			Actor:            models.SystemActor("dispatcher"),
			Operation:        "annotation",
		})
		require.NoError(t, err)
	}

	type entriesBody struct {
		Entries []struct {
			SequenceNumber int    `json:"sequence_number"`
			Operation      string `json:"operation"`
		} `json:"entries"`
		Count int `json:"count"`
	}

	t.Run("full history", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/"+taskID+"/entries", "secret-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body entriesBody
		require.NoError(t, jsonDecode(rec, &body))
		assert.Equal(t, 4, body.Count)
		assert.Equal(t, models.OpTaskCreated, body.Entries[0].Operation)
	})

	t.Run("since cursor", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/"+taskID+"/entries?since=2", "secret-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body entriesBody
		require.NoError(t, jsonDecode(rec, &body))
		require.Equal(t, 2, body.Count)
		assert.Equal(t, 3, body.Entries[0].SequenceNumber)
	})

	t.Run("non-integer since", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/"+taskID+"/entries?since=abc", "secret-1", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("tenant check precedes the read", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/"+taskID+"/entries", "secret-2", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCancelTaskEndpoint(t *testing.T) {
	f := newServerFixture(t)
	taskID := f.createTask(t, "secret-1")

	t.Run("cancels the task", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+taskID+"/cancel", "secret-1", gin.H{"reason": "changed my mind"})
		require.Equal(t, http.StatusOK, rec.Code)

		tc, err := f.tasks.LoadContext(context.Background(), "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, tc.State.Status)
	})

	t.Run("second cancel conflicts", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+taskID+"/cancel", "secret-1", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("other tenant gets 404", func(t *testing.T) {
		other := f.createTask(t, "secret-1")
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+other+"/cancel", "secret-2", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUIRequestEndpoints(t *testing.T) {
	f := newServerFixture(t)
	ctx := context.Background()
	taskID := f.createTask(t, "secret-1")

	openRequest := func(requestID string) {
		t.Helper()
		_, err := f.uiRequests.Open(ctx, taskID, "collector", models.UIRequestSpec{
			RequestID:    requestID,
			TemplateKind: models.UIKindForm,
			SemanticData: map[string]any{"data_path": "contact"},
		})
		require.NoError(t, err)
	}
	openRequest("ui-1")

	t.Run("lists pending requests", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/"+taskID+"/ui-requests", "secret-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Count int `json:"count"`
		}
		require.NoError(t, jsonDecode(rec, &body))
		assert.Equal(t, 1, body.Count)
	})

	t.Run("submits a response", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+taskID+"/ui-requests/ui-1/response", "secret-1",
			gin.H{"payload": map[string]any{"email": "ops@acme.test"}})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		tc, err := f.tasks.LoadContext(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusActive, tc.State.Status)
	})

	t.Run("second response conflicts", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+taskID+"/ui-requests/ui-1/response", "secret-1",
			gin.H{"payload": map[string]any{"email": "late@acme.test"}})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing payload", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+taskID+"/ui-requests/ui-1/response", "secret-1", gin.H{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown request", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+taskID+"/ui-requests/ghost/response", "secret-1",
			gin.H{"payload": map[string]any{"email": "x"}})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("cancels a pending request", func(t *testing.T) {
		openRequest("ui-2")
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+taskID+"/ui-requests/ui-2/cancel", "secret-1",
			gin.H{"reason": "no longer needed"})
		require.Equal(t, http.StatusOK, rec.Code)

		row, err := f.uiRequests.Get(ctx, taskID, "ui-2")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", string(row.Status))
		assert.Equal(t, "no longer needed", row.CancelReason)
	})

	t.Run("responded request is not cancellable", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+taskID+"/ui-requests/ui-1/cancel", "secret-1", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("tenant check precedes the read", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/"+taskID+"/ui-requests", "secret-2", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, jsonDecode(rec, &body))
	assert.Equal(t, "healthy", body.Status)
}
