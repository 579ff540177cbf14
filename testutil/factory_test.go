package testutil_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dan-strohschein/linkar-go/testutil"
)

func TestBuildUsesDefaultsAndOptions(t *testing.T) {
	f := testutil.NewCustomerFactory()
	r := f.Build(testutil.WithID("C1"), testutil.WithField("NAME", "Acme"))

	if r.ID != "C1" {
		t.Errorf("expected id C1, got %s", r.ID)
	}
	if r.Fields["NAME"] != "Acme" {
		t.Errorf("expected NAME override, got %s", r.Fields["NAME"])
	}
	if r.Fields["COUNTRY"] != "ES" {
		t.Errorf("expected default COUNTRY, got %s", r.Fields["COUNTRY"])
	}
}

func TestBuildListUniqueIDs(t *testing.T) {
	records := testutil.NewCustomerFactory().BuildList(3)
	seen := map[string]bool{}
	for _, r := range records {
		if seen[r.ID] {
			t.Fatalf("duplicate id %s", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestXMLEscapesValues(t *testing.T) {
	r := testutil.NewRecordFactory(nil).Build(testutil.WithID("1"), testutil.WithField("NAME", "A & B"))
	got := testutil.XML([]testutil.Record{r})
	want := "<RECORDS><RECORD><LKITEMID>1</LKITEMID><NAME>A &amp; B</NAME></RECORD></RECORDS>"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestIDs(t *testing.T) {
	f := testutil.NewRecordFactory(nil)
	got := testutil.IDs([]testutil.Record{f.Build(testutil.WithID("1")), f.Build(testutil.WithID("2"))})
	if strings.Count(got, "<LKITEMID>") != 2 {
		t.Errorf("expected two ids in %s", got)
	}
}

func TestJSON(t *testing.T) {
	r := testutil.NewRecordFactory(map[string]string{"NAME": "X"}).Build(testutil.WithID("7"))

	var body struct {
		Records []map[string]string `json:"RECORDS"`
	}
	if err := json.Unmarshal([]byte(testutil.JSON([]testutil.Record{r})), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Records) != 1 || body.Records[0]["LKITEMID"] != "7" || body.Records[0]["NAME"] != "X" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestRandomString(t *testing.T) {
	if got := testutil.RandomString(12); len(got) != 12 {
		t.Errorf("expected 12 chars, got %d", len(got))
	}
}
