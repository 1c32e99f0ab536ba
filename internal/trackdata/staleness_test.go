package trackdata

import "testing"

func TestDecide(t *testing.T) {
	current := State{
		ArtifactPath:   "TrackData.lua",
		ArtifactExists: true,
		PriorBuild:     "1.0.0.1",
		PriorBuildOK:   true,
		CurrentBuild:   "1.0.0.1",
		CurrentBuildOK: true,
	}

	cases := []struct {
		name       string
		state      State
		wantRegen  bool
		wantReason string
	}{
		{
			name: "forced",
			state: func() State {
				s := current
				s.Force = true
				return s
			}(),
			wantRegen:  true,
			wantReason: "forced regeneration",
		},
		{
			name: "forced wins over missing artifact",
			state: State{
				Force:        true,
				ArtifactPath: "TrackData.lua",
			},
			wantRegen:  true,
			wantReason: "forced regeneration",
		},
		{
			name: "missing artifact",
			state: State{
				ArtifactPath:   "out/TrackData.lua",
				CurrentBuild:   "9.9.9.1",
				CurrentBuildOK: true,
			},
			wantRegen:  true,
			wantReason: "TrackData.lua does not exist",
		},
		{
			name: "unreadable prior build",
			state: State{
				ArtifactPath:   "TrackData.lua",
				ArtifactExists: true,
				CurrentBuild:   "9.9.9.1",
				CurrentBuildOK: true,
			},
			wantRegen:  true,
			wantReason: "could not determine existing build version",
		},
		{
			name: "unknown current build skips",
			state: State{
				ArtifactPath:   "TrackData.lua",
				ArtifactExists: true,
				PriorBuild:     "1.0.0.1",
				PriorBuildOK:   true,
			},
			wantRegen:  false,
			wantReason: "could not fetch current build",
		},
		{
			name: "build changed",
			state: func() State {
				s := current
				s.CurrentBuild = "1.0.0.2"
				return s
			}(),
			wantRegen:  true,
			wantReason: "build changed: 1.0.0.1 -> 1.0.0.2",
		},
		{
			name:       "up to date",
			state:      current,
			wantRegen:  false,
			wantReason: "already up to date (build 1.0.0.1)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			regen, reason := Decide(tc.state)
			if regen != tc.wantRegen {
				t.Errorf("regen = %v, want %v", regen, tc.wantRegen)
			}
			if reason != tc.wantReason {
				t.Errorf("reason = %q, want %q", reason, tc.wantReason)
			}
		})
	}
}
