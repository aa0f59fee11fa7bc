package quat3d

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

func (quat Quaternion) String() string {
	return "Quaternion(scalar:" + strconv.FormatFloat(float64(quat.W), 'g', -1, 32) +
		", vector:(" + strconv.FormatFloat(float64(quat.X), 'g', -1, 32) +
		", " + strconv.FormatFloat(float64(quat.Y), 'g', -1, 32) +
		", " + strconv.FormatFloat(float64(quat.Z), 'g', -1, 32) + "))"
}

// MarshalBinary encodes the Quaternion as 16 bytes: the scalar part, then X, Y, and Z, each as a big-endian IEEE 754 float32.
func (quat Quaternion) MarshalBinary() ([]byte, error) {
	data := make([]byte, 16)
	binary.BigEndian.PutUint32(data[0:], math.Float32bits(quat.W))
	binary.BigEndian.PutUint32(data[4:], math.Float32bits(quat.X))
	binary.BigEndian.PutUint32(data[8:], math.Float32bits(quat.Y))
	binary.BigEndian.PutUint32(data[12:], math.Float32bits(quat.Z))
	return data, nil
}

// UnmarshalBinary decodes a Quaternion written by MarshalBinary. The Quaternion is left unchanged if data isn't 16 bytes long.
func (quat *Quaternion) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidQuaternionData, len(data))
	}
	quat.W = math.Float32frombits(binary.BigEndian.Uint32(data[0:]))
	quat.X = math.Float32frombits(binary.BigEndian.Uint32(data[4:]))
	quat.Y = math.Float32frombits(binary.BigEndian.Uint32(data[8:]))
	quat.Z = math.Float32frombits(binary.BigEndian.Uint32(data[12:]))
	return nil
}

type quaternionJSON struct {
	W float32 `json:"w"`
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// MarshalJSON encodes the Quaternion as a JSON object of the form {"w":1,"x":0,"y":0,"z":0}.
func (quat Quaternion) MarshalJSON() ([]byte, error) {
	return json.Marshal(quaternionJSON{W: quat.W, X: quat.X, Y: quat.Y, Z: quat.Z})
}

// UnmarshalJSON decodes a Quaternion from a JSON object with "w", "x", "y", and "z" keys.
// Missing keys take the identity Quaternion's values.
func (quat *Quaternion) UnmarshalJSON(data []byte) error {
	aux := quaternionJSON{W: 1}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("quat3d: decoding quaternion: %w", err)
	}
	*quat = NewQuaternion(aux.W, aux.X, aux.Y, aux.Z)
	return nil
}
