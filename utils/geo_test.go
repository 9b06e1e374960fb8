package utils

import "testing"

func TestHaversine(t *testing.T) {
	// Tiananmen to People's Square (Beijing -> Shanghai), roughly 1070 km.
	d := Haversine(39.9042, 116.4074, 31.2304, 121.4737)
	if d < 1000 || d > 1150 {
		t.Fatalf("Beijing-Shanghai distance = %.1f km, want ~1070", d)
	}
	if d := Haversine(39.9, 116.4, 39.9, 116.4); d != 0 {
		t.Fatalf("zero distance = %v", d)
	}
}

func TestResolveBasePoint(t *testing.T) {
	// User coordinates win over everything.
	lon, lat, ok := ResolveBasePoint("beijing", "great wall", 31.0, 121.0)
	if !ok || lon != 121.0 || lat != 31.0 {
		t.Fatalf("user coords not preferred: %v %v %v", lon, lat, ok)
	}

	// Landmark keyword beats city center.
	lon, _, ok = ResolveBasePoint("beijing", "Great Wall", 0, 0)
	if !ok || lon == 116.4074 {
		t.Fatalf("landmark not resolved: %v %v", lon, ok)
	}

	// City center fallback, case-insensitive.
	lon, lat, ok = ResolveBasePoint("Shanghai", "", 0, 0)
	if !ok || lon != 121.4737 || lat != 31.2304 {
		t.Fatalf("city center not resolved: %v %v %v", lon, lat, ok)
	}

	if _, _, ok := ResolveBasePoint("atlantis", "", 0, 0); ok {
		t.Fatal("unknown city should not resolve")
	}
}

func TestGenerateReferenceCode(t *testing.T) {
	code, err := GenerateReferenceCode(8)
	if err != nil {
		t.Fatalf("GenerateReferenceCode: %v", err)
	}
	if len(code) != len("BK-")+8 {
		t.Fatalf("code %q has wrong length", code)
	}
	if code[:3] != "BK-" {
		t.Fatalf("code %q missing prefix", code)
	}
	if _, err := GenerateReferenceCode(0); err == nil {
		t.Fatal("zero length should error")
	}
}
