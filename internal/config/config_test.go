package config

import (
	"reflect"
	"testing"
)

func TestSplitURLsDropsEmptyTokens(t *testing.T) {
	got := SplitURLs("http://a.com, http://b.com\n\thttp://c.com,,  ")
	want := []string{"http://a.com", "http://b.com", "http://c.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitURLs = %v, want %v", got, want)
	}
}

func TestSplitURLsSplitsOnBareSpace(t *testing.T) {
	got := SplitURLs("http://a.com http://b.com")
	want := []string{"http://a.com", "http://b.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitURLs = %v, want %v", got, want)
	}
}

func TestMergeConcatenatesURLsFileFirst(t *testing.T) {
	v := Default()
	v.URLList = []string{"http://from-flag.com"}
	f := file{URLs: []string{"http://from-file.com"}}

	merged := v.Merge(f, map[string]bool{})
	want := []string{"http://from-file.com", "http://from-flag.com"}
	if !reflect.DeepEqual(merged.URLList, want) {
		t.Errorf("URLList = %v, want %v", merged.URLList, want)
	}
}

func TestMergeFlagWinsOverFile(t *testing.T) {
	v := Default()
	v.NumClients = 5
	f := file{Clients: intPtr(50)}

	merged := v.Merge(f, map[string]bool{"clients": true})
	if merged.NumClients != 5 {
		t.Errorf("flag-set value should win, got %d", merged.NumClients)
	}

	merged2 := v.Merge(f, map[string]bool{})
	if merged2.NumClients != 50 {
		t.Errorf("file value should apply when flag unset, got %d", merged2.NumClients)
	}
}

func TestIsReadyRequiresAtLeastOneURL(t *testing.T) {
	v := Default()
	if v.IsReady() {
		t.Errorf("expected not ready with no URLs")
	}
	v.URLList = []string{"http://a.com"}
	if !v.IsReady() {
		t.Errorf("expected ready with a URL configured")
	}
}

func intPtr(i int) *int { return &i }
