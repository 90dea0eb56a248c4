// internal/pzem/encode.go
package pzem

import "strconv"

// Encode renders a measurement in the fixed wire layout:
//
//	{"voltage":230.1,"current":0.417,"power":95.9,"energy":12345,"frequency":50.0,"power_factor":0.99,"alarm":false}
//
// Field order and precision are locked.
func Encode(m Measurement) []byte {
	buf := make([]byte, 0, 128)
	buf = append(buf, `{"voltage":`...)
	buf = strconv.AppendFloat(buf, m.Voltage, 'f', 1, 64)
	buf = append(buf, `,"current":`...)
	buf = strconv.AppendFloat(buf, m.Current, 'f', 3, 64)
	buf = append(buf, `,"power":`...)
	buf = strconv.AppendFloat(buf, m.Power, 'f', 1, 64)
	buf = append(buf, `,"energy":`...)
	buf = strconv.AppendUint(buf, uint64(m.Energy), 10)
	buf = append(buf, `,"frequency":`...)
	buf = strconv.AppendFloat(buf, m.Frequency, 'f', 1, 64)
	buf = append(buf, `,"power_factor":`...)
	buf = strconv.AppendFloat(buf, m.PowerFactor, 'f', 2, 64)
	buf = append(buf, `,"alarm":`...)
	buf = strconv.AppendBool(buf, m.Alarm)
	buf = append(buf, '}')
	return buf
}
