package signature

import (
	"github.com/alex0twery0/POGOLib/geo"
	"github.com/alex0twery0/POGOLib/protocol"
)

// LocationFix is one simulated GPS sample. Fixes are ephemeral: generated
// fresh for each signature and never persisted.
type LocationFix struct {
	Provider           string  `json:"provider"`
	TimestampSnapshot  uint64  `json:"timestampSnapshot"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	HorizontalAccuracy float64 `json:"horizontalAccuracy"`
	VerticalAccuracy   float64 `json:"verticalAccuracy"`
	Altitude           float64 `json:"altitude"`
	ProviderStatus     uint32  `json:"providerStatus"`
	LocationType       uint32  `json:"locationType"`
	Floor              uint32  `json:"floor"`
	Course             float64 `json:"course"`
	Speed              float64 `json:"speed"`
}

// fixState tracks the generation loop. A clamped first fix terminates the
// sequence, as does any future-dated candidate once a fix exists. The live
// client's sampling loop has exactly these two outcomes; the distribution
// is replicated as observed, not smoothed out.
type fixState int

const (
	fixAccumulating fixState = iota
	fixClampedDone
)

// locationFixes back-fills a sequence of fixes older than elapsedMs, oldest
// first. The sequence may be shorter than the drawn count; callers must not
// assume the count is reached. An envelope without sub-requests yields an
// empty sequence, which the assembler rejects.
func (e *Engine) locationFixes(env *protocol.RequestEnvelope, elapsedMs int64) []LocationFix {
	if len(env.Requests) == 0 {
		return nil
	}

	src := e.session.Random
	count := src.IntRange(minFixCount, maxFixCount)
	fixes := make([]LocationFix, 0, count)

	state := fixAccumulating
	for i := 0; i < count && state == fixAccumulating; i++ {
		step := int64(i + 1)
		spacing := fixSpacingMs * step
		jitter := fixCeilingMs*step - spacing
		snapshot := elapsedMs + spacing + src.Int64Range(0, jitter)

		if snapshot >= elapsedMs {
			if len(fixes) != 0 {
				// Future-dated candidate with fixes already present: the
				// sequence ends here.
				break
			}
			snapshot = elapsedMs - src.Int64Range(clampBackMinMs, clampBackMaxMs)
			if snapshot < 0 {
				snapshot = 0
			}
			state = fixClampedDone
		}

		// Front insertion keeps the sequence oldest-first: later iterations
		// produce earlier timestamps.
		fixes = append([]LocationFix{e.newFix(uint64(snapshot))}, fixes...)
	}
	return fixes
}

// newFix samples one fix around the session's true position.
func (e *Engine) newFix(snapshot uint64) LocationFix {
	src := e.session.Random
	distance := src.Float64Range(offsetMinMeters, offsetMaxMeters)
	bearing := src.Float64Range(0, 360)
	lat, lng := geo.Destination(e.session.Latitude, e.session.Longitude, distance, bearing)

	return LocationFix{
		Provider:           providerFused,
		TimestampSnapshot:  snapshot,
		Latitude:           lat,
		Longitude:          lng,
		HorizontalAccuracy: src.Float64Range(accuracyMinMeters, accuracyMaxMeters),
		VerticalAccuracy:   src.Float64Range(accuracyMinMeters, accuracyMaxMeters),
		Altitude:           src.Float64Range(altitudeMinMeters, altitudeMaxMeters),
		ProviderStatus:     providerStatus,
		LocationType:       locationType,
		Course:             courseUnknown,
		Speed:              speedUnknown,
	}
}
