package signature

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/alex0twery0/POGOLib/device"
	"github.com/alex0twery0/POGOLib/protocol"
)

// Uint64String and Int64String marshal as JSON strings. The record's byte
// form is canonicalized per RFC 8785, which cannot represent integers
// beyond 2^53; 64-bit hashes and the sentinel must ride as strings.
type Uint64String uint64

func (u Uint64String) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(u), 10) + `"`), nil
}

func (u *Uint64String) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseUint(unquote(b), 10, 64)
	if err != nil {
		return err
	}
	*u = Uint64String(v)
	return nil
}

type Int64String int64

func (i Int64String) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatInt(int64(i), 10) + `"`), nil
}

func (i *Int64String) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseInt(unquote(b), 10, 64)
	if err != nil {
		return err
	}
	*i = Int64String(v)
	return nil
}

func unquote(b []byte) string {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// SensorInfo is one synthetic inertial sample. Exactly one is produced per
// record, regardless of the number of location fixes.
type SensorInfo struct {
	TimestampSnapshot     uint64  `json:"timestampSnapshot"`
	LinearAccelerationX   float64 `json:"linearAccelerationX"`
	LinearAccelerationY   float64 `json:"linearAccelerationY"`
	LinearAccelerationZ   float64 `json:"linearAccelerationZ"`
	MagneticFieldAccuracy int32   `json:"magneticFieldAccuracy"`
	AttitudePitch         float64 `json:"attitudePitch"`
	AttitudeYaw           float64 `json:"attitudeYaw"`
	AttitudeRoll          float64 `json:"attitudeRoll"`
	RotationRateX         float64 `json:"rotationRateX"`
	RotationRateY         float64 `json:"rotationRateY"`
	RotationRateZ         float64 `json:"rotationRateZ"`
	GravityX              float64 `json:"gravityX"`
	GravityY              float64 `json:"gravityY"`
	GravityZ              float64 `json:"gravityZ"`
	Status                int32   `json:"status"`
}

// ActivityStatus reports the motion classification for the handset.
type ActivityStatus struct {
	Stationary bool `json:"stationary"`
}

// Record is the plaintext signature record. It is assembled completely
// before serialization; a partial record is never emitted.
type Record struct {
	TimestampSinceStart uint64          `json:"timestampSinceStart"`
	Timestamp           int64           `json:"timestamp"`
	DeviceInfo          *device.Profile `json:"deviceInfo"`
	ActivityStatus      ActivityStatus  `json:"activityStatus"`
	LocationFixes       []LocationFix   `json:"locationFix"`
	SensorInfo          SensorInfo      `json:"sensorInfo"`
	LocationHash1       uint32          `json:"locationHash1"`
	LocationHash2       uint32          `json:"locationHash2"`
	RequestHashes       []Uint64String  `json:"requestHash"`
	SessionHash         []byte          `json:"sessionHash"`
	Unknown25           Int64String     `json:"unknown25"`
}

// buildRecord assembles the full record and applies the observable side
// effects: the session's accuracy fields and the envelope's accuracy and
// ms-since-last-fix fields are overwritten from the first (oldest) fix.
func (e *Engine) buildRecord(env *protocol.RequestEnvelope, fixes []LocationFix, elapsedMs int64) (*Record, error) {
	if len(fixes) == 0 {
		return nil, ErrNoLocationFixes
	}
	first := fixes[0]

	e.session.HorizontalAccuracy = first.HorizontalAccuracy
	e.session.VerticalAccuracy = first.VerticalAccuracy
	env.Accuracy = first.HorizontalAccuracy
	env.MsSinceLastLocationFix = elapsedMs - int64(first.TimestampSnapshot)

	ticket := env.TicketBytes()
	loc := locationBytes(env.Latitude, env.Longitude, first.HorizontalAccuracy)

	record := &Record{
		TimestampSinceStart: uint64(elapsedMs),
		Timestamp:           e.now().UnixMilli(),
		DeviceInfo:          e.session.Device,
		ActivityStatus:      ActivityStatus{Stationary: true},
		LocationFixes:       fixes,
		SensorInfo:          e.sensorInfo(elapsedMs),
		LocationHash1:       e.hasher.Hash32Salt(loc, e.hasher.Hash32(ticket)),
		LocationHash2:       e.hasher.Hash32(loc),
		RequestHashes:       make([]Uint64String, 0, len(env.Requests)),
		SessionHash:         e.sessionHash[:],
		Unknown25:           Int64String(recordSentinel),
	}

	requestKey := e.hasher.Hash64(ticket)
	for _, req := range env.Requests {
		h := e.hasher.Hash64Salt(req.Marshal(), requestKey)
		record.RequestHashes = append(record.RequestHashes, Uint64String(h))
	}
	return record, nil
}

// sensorInfo draws the single inertial sample for a record.
func (e *Engine) sensorInfo(elapsedMs int64) SensorInfo {
	src := e.session.Random
	return SensorInfo{
		TimestampSnapshot:     uint64(elapsedMs + src.Int64Range(sensorDelayMinMs, sensorDelayMaxMs)),
		LinearAccelerationX:   src.Float64Range(-0.7, 0.7),
		LinearAccelerationY:   src.Float64Range(-0.7, 0.7),
		LinearAccelerationZ:   src.Float64Range(-0.7, 0.7),
		MagneticFieldAccuracy: magneticAccuracyUnset,
		AttitudePitch:         src.Float64Range(-1.0, 1.0),
		AttitudeYaw:           src.Float64Range(-1.0, 1.0),
		AttitudeRoll:          src.Float64Range(-1.0, 1.0),
		RotationRateX:         src.Float64Range(0, 0.7),
		RotationRateY:         src.Float64Range(0, 0.8),
		RotationRateZ:         src.Float64Range(0, 0.8),
		GravityX:              src.Float64Range(-1.0, 1.0),
		GravityY:              src.Float64Range(-1.0, 1.0),
		GravityZ:              src.Float64Range(-1.0, 1.0),
		Status:                sensorStatus,
	}
}

// locationBytes is the keyed-hash input for the location hashes: latitude
// and longitude as 64-bit floats and horizontal accuracy as a 32-bit float,
// each forced to big-endian byte order.
func locationBytes(lat, lng, accuracy float64) []byte {
	b := make([]byte, 20)
	binary.BigEndian.PutUint64(b[0:8], math.Float64bits(lat))
	binary.BigEndian.PutUint64(b[8:16], math.Float64bits(lng))
	binary.BigEndian.PutUint32(b[16:20], math.Float32bits(float32(accuracy)))
	return b
}
