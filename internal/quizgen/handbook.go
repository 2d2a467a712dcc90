package quizgen

import (
	"fmt"
	"strings"
)

// Sign pairs a handbook sign name with its verified stable image URL.
type Sign struct {
	Name string
	URL  string
}

// SignLibrary is the fixed dictionary of stable Wikimedia URLs for
// California DMV signs. Kept as an ordered slice so prompt rendering is
// deterministic. The generator must use these exact URLs and never
// invent its own.
var SignLibrary = []Sign{
	{"STOP", "https://upload.wikimedia.org/wikipedia/commons/thumb/f/f9/STOP_sign.svg/1200px-STOP_sign.svg.png"},
	{"YIELD", "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d8/Yield_sign.svg/1200px-Yield_sign.svg.png"},
	{"SCHOOL_ZONE", "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d2/S1-1_School_Sign.svg/1200px-S1-1_School_Sign.svg.png"},
	{"NO_U_TURN", "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c5/California_R3-4.svg/1200px-California_R3-4.svg.png"},
	{"ONE_WAY", "https://upload.wikimedia.org/wikipedia/commons/thumb/4/4b/One_Way_sign.svg/1200px-One_Way_sign.svg.png"},
	{"SLIPPERY_WHEN_WET", "https://upload.wikimedia.org/wikipedia/commons/thumb/1/1d/Slippery_Road_Sign.svg/1200px-Slippery_Road_Sign.svg.png"},
	{"PEDESTRIAN_CROSSING", "https://upload.wikimedia.org/wikipedia/commons/thumb/0/07/MUTCD_W11-2.svg/1200px-MUTCD_W11-2.svg.png"},
	{"DO_NOT_ENTER", "https://upload.wikimedia.org/wikipedia/commons/thumb/1/12/Do_Not_Enter.svg/1200px-Do_Not_Enter.svg.png"},
	{"DIVIDED_HIGHWAY_ENDS", "https://upload.wikimedia.org/wikipedia/commons/thumb/9/91/W6-2_sign.svg/1200px-W6-2_sign.svg.png"},
	{"MERGING_TRAFFIC", "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a2/MUTCD_W4-1.svg/1200px-MUTCD_W4-1.svg.png"},
	{"KEEP_RIGHT", "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b3/Keep_Right_sign.svg/1200px-Keep_Right_sign.svg.png"},
	{"NO_LEFT_TURN", "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e0/No_Left_Turn.svg/1200px-No_Left_Turn.svg.png"},
	{"SIGNAL_AHEAD", "https://upload.wikimedia.org/wikipedia/commons/thumb/0/05/Signal_Ahead_sign.svg/1200px-Signal_Ahead_sign.svg.png"},
	{"RR_CROSSING", "https://upload.wikimedia.org/wikipedia/commons/thumb/1/12/Railroad_Crossing_Warning_Sign.svg/1200px-Railroad_Crossing_Warning_Sign.svg.png"},
	{"HILL_AHEAD", "https://upload.wikimedia.org/wikipedia/commons/thumb/3/30/MUTCD_W7-1.svg/1200px-MUTCD_W7-1.svg.png"},
}

// SignURL looks up a sign's URL by name. Returns "" when unknown.
func SignURL(name string) string {
	for _, s := range SignLibrary {
		if s.Name == name {
			return s.URL
		}
	}
	return ""
}

// renderSignLibrary renders the library as a pretty JSON object in
// declaration order.
func renderSignLibrary() string {
	var b strings.Builder
	b.WriteString("{\n")
	for i, s := range SignLibrary {
		fmt.Fprintf(&b, "  %q: %q", s.Name, s.URL)
		if i < len(SignLibrary)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// HandbookHighlights returns the fixed knowledge excerpt from the 2025
// California Driver's Handbook that anchors every generation request.
func HandbookHighlights() string {
	return fmt.Sprintf(`
CRITICAL KNOWLEDGE FROM CALIFORNIA DRIVER'S HANDBOOK (2025 EDITION):

1. SPEED LIMITS:
   - 25 mph: School zones, Residential, Business districts.
   - 15 mph: Blind intersections, Alleys, Near RR tracks.
   - 65 mph: Max on most highways.
   - 55 mph: Two-lane undivided highways.

2. NUMBERS & DISTANCES:
   - 3 seconds: Following distance.
   - 100 feet: Signal before turn.
   - 200 feet: Distance in center left-turn/bike lane.
   - 18 inches: Max curb distance.
   - 10 days: Notify DMV after accident/move.

3. MINORS & DUI:
   - Under 21: 0.01%% BAC Zero Tolerance.
   - Provisional: No driving 11pm-5am first year.
   - DUI: 0.08%% for 21+.

4. SIGN LIBRARY (USE THESE EXACT URLS):
%s
`, renderSignLibrary())
}
