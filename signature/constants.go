package signature

// Protocol constants mirrored from the live client. The server validates
// these verbatim; none of them are tunable.
const (
	// recordSentinel is the fixed unknown25 value every record carries.
	recordSentinel int64 = -8408506833887075802

	providerFused  = "fused"
	providerStatus = 3
	locationType   = 1
	// courseUnknown and speedUnknown mark the fix as having no heading data.
	courseUnknown float64 = -1
	speedUnknown  float64 = -1

	// sensorStatus and magneticAccuracyUnset are the fixed sensor codes the
	// client reports for a stationary handset.
	sensorStatus          int32 = 3
	magneticAccuracyUnset int32 = -1
)

// Sampling parameters of the client's GPS stack model.
const (
	minFixCount = 4
	maxFixCount = 10

	// Sample spacing grows 150 ms per back-filled fix; jitter grows 100 ms.
	fixSpacingMs int64 = 150
	fixCeilingMs int64 = 250

	// Clamp window for a first fix that would land in the future.
	clampBackMinMs int64 = 20
	clampBackMaxMs int64 = 50

	offsetMinMeters = 10.0
	offsetMaxMeters = 110.0

	accuracyMinMeters = 5.0
	accuracyMaxMeters = 25.0
	altitudeMinMeters = 10.0
	altitudeMaxMeters = 30.0

	sensorDelayMinMs int64 = 100
	sensorDelayMaxMs int64 = 250
)
