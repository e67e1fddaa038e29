package pipeline

import "testing"

func TestVideoFileName(t *testing.T) {
	e := testEvent("123", "2024-05-01T10:00:00Z", "Front Door!", true)

	got := VideoFileName(e)
	want := "2024-05-01_10-00-00-front-door-person.mp4"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	// Same inputs, same name.
	if again := VideoFileName(e); again != got {
		t.Errorf("Name is not deterministic: %q vs %q", got, again)
	}
}

func TestVideoFileNamePersonSuffixOnly(t *testing.T) {
	with := VideoFileName(testEvent("1", "2024-05-01T10:00:00Z", "Front Door", true))
	without := VideoFileName(testEvent("1", "2024-05-01T10:00:00Z", "Front Door", false))

	if without != "2024-05-01_10-00-00-front-door.mp4" {
		t.Errorf("Unexpected base name %q", without)
	}
	if with != "2024-05-01_10-00-00-front-door-person.mp4" {
		t.Errorf("Person flag must change only the suffix, got %q", with)
	}
}

func TestVideoFileNameStampIsUTC(t *testing.T) {
	got := VideoFileName(testEvent("1", "2024-05-01T23:30:00-05:00", "Front", false))
	want := "2024-05-02_04-30-00-front.mp4"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestVideoFileNameNoCameraLabel(t *testing.T) {
	got := VideoFileName(testEvent("1", "2024-05-01T10:00:00Z", "", false))
	if got != "2024-05-01_10-00-00.mp4" {
		t.Errorf("Expected bare timestamp name, got %q", got)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Front Door!", "front-door"},
		{"  Back--Yard  Cam ", "back-yard-cam"},
		{"Garage2", "garage2"},
		{"***", ""},
		{"", ""},
		{"Side (East) / Gate", "side-east-gate"},
	}

	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}
