package mapping

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *mockMappingRepo, *echo.Echo) {
	repo := newMockMappingRepo()
	return NewHandler(NewService(repo)), repo, echo.New()
}

func newContext(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_CreateMapping(t *testing.T) {
	h, repo, e := newTestHandler()
	patientID := repo.addPatient("Alice")
	doctorID := repo.addDoctor("Dr. Strange")

	body := `{"patient":"` + patientID.String() + `","doctor":"` + doctorID.String() + `"}`
	c, rec := newContext(e, http.MethodPost, body)
	if err := h.CreateMapping(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var got Mapping
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.PatientName != "Alice" || got.DoctorName != "Dr. Strange" {
		t.Errorf("expected names in response, got %q / %q", got.PatientName, got.DoctorName)
	}
}

func TestHandler_CreateMapping_DanglingReference(t *testing.T) {
	h, repo, e := newTestHandler()
	doctorID := repo.addDoctor("Dr. Strange")

	body := `{"patient":"` + uuid.NewString() + `","doctor":"` + doctorID.String() + `"}`
	c, _ := newContext(e, http.MethodPost, body)
	err := h.CreateMapping(c)
	if err == nil {
		t.Fatal("expected error for dangling patient reference")
	}
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_ListMappings(t *testing.T) {
	h, repo, e := newTestHandler()
	patientID := repo.addPatient("Alice")
	doctorID := repo.addDoctor("Dr. Strange")

	if err := h.svc.CreateMapping(context.Background(), &Mapping{PatientID: patientID, DoctorID: doctorID}); err != nil {
		t.Fatalf("CreateMapping() error: %v", err)
	}

	c, rec := newContext(e, http.MethodGet, "")
	if err := h.ListMappings(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Data  []*Mapping `json:"data"`
		Total int        `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Total != 1 || len(resp.Data) != 1 {
		t.Errorf("expected 1 mapping, got total=%d len=%d", resp.Total, len(resp.Data))
	}
}

func TestHandler_GetDoctorsByPatient(t *testing.T) {
	h, repo, e := newTestHandler()
	alice := repo.addPatient("Alice")
	bob := repo.addPatient("Bob")
	d1 := repo.addDoctor("Dr. One")
	d2 := repo.addDoctor("Dr. Two")

	for _, m := range []*Mapping{
		{PatientID: alice, DoctorID: d1},
		{PatientID: alice, DoctorID: d2},
		{PatientID: bob, DoctorID: d1},
	} {
		if err := h.svc.CreateMapping(context.Background(), m); err != nil {
			t.Fatalf("CreateMapping() error: %v", err)
		}
	}

	c, rec := newContext(e, http.MethodGet, "")
	c.SetParamNames("patientId")
	c.SetParamValues(alice.String())
	if err := h.GetDoctorsByPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []*Mapping
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments for alice, got %d", len(got))
	}
}

func TestHandler_GetDoctorsByPatient_Empty(t *testing.T) {
	h, repo, e := newTestHandler()
	alice := repo.addPatient("Alice")

	c, rec := newContext(e, http.MethodGet, "")
	c.SetParamNames("patientId")
	c.SetParamValues(alice.String())
	if err := h.GetDoctorsByPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}

func TestHandler_GetDoctorsByPatient_InvalidID(t *testing.T) {
	h, _, e := newTestHandler()

	c, _ := newContext(e, http.MethodGet, "")
	c.SetParamNames("patientId")
	c.SetParamValues("not-a-uuid")
	err := h.GetDoctorsByPatient(c)
	if err == nil {
		t.Fatal("expected error for invalid patient id")
	}
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_UpdateMapping(t *testing.T) {
	h, repo, e := newTestHandler()
	alice := repo.addPatient("Alice")
	d1 := repo.addDoctor("Dr. One")
	d2 := repo.addDoctor("Dr. Two")

	m := &Mapping{PatientID: alice, DoctorID: d1}
	if err := h.svc.CreateMapping(context.Background(), m); err != nil {
		t.Fatalf("CreateMapping() error: %v", err)
	}

	body := `{"patient":"` + alice.String() + `","doctor":"` + d2.String() + `"}`
	c, rec := newContext(e, http.MethodPut, body)
	c.SetParamNames("id")
	c.SetParamValues(m.ID.String())
	if err := h.UpdateMapping(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var got Mapping
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.DoctorID != d2 || got.DoctorName != "Dr. Two" {
		t.Errorf("update not reflected: %+v", got)
	}
}

func TestHandler_UpdateMapping_NotFound(t *testing.T) {
	h, repo, e := newTestHandler()
	alice := repo.addPatient("Alice")
	d1 := repo.addDoctor("Dr. One")

	body := `{"patient":"` + alice.String() + `","doctor":"` + d1.String() + `"}`
	c, _ := newContext(e, http.MethodPut, body)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	err := h.UpdateMapping(c)
	if err == nil {
		t.Fatal("expected error for unknown mapping")
	}
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_DeleteMapping(t *testing.T) {
	h, repo, e := newTestHandler()
	alice := repo.addPatient("Alice")
	d1 := repo.addDoctor("Dr. One")

	m := &Mapping{PatientID: alice, DoctorID: d1}
	if err := h.svc.CreateMapping(context.Background(), m); err != nil {
		t.Fatalf("CreateMapping() error: %v", err)
	}

	c, rec := newContext(e, http.MethodDelete, "")
	c.SetParamNames("id")
	c.SetParamValues(m.ID.String())
	if err := h.DeleteMapping(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}

	c, _ = newContext(e, http.MethodDelete, "")
	c.SetParamNames("id")
	c.SetParamValues(m.ID.String())
	err := h.DeleteMapping(c)
	if err == nil {
		t.Fatal("expected error on double delete")
	}
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
