// internal/relay/encode.go
package relay

// EncodeStates renders the state array in the fixed wire layout:
//
//	{"relay_1":{"state":0},"relay_2":{"state":1},...,"relay_8":{"state":0}}
//
// Key order, spelling and the absence of whitespace are part of the protocol;
// clients match this text literally and MUST NOT receive anything else.
func EncodeStates(states [Count]bool) []byte {
	buf := make([]byte, 0, 256)
	buf = append(buf, '{')
	for i, on := range states {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, `"relay_`...)
		buf = append(buf, byte('1'+i))
		buf = append(buf, `":{"state":`...)
		if on {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
		buf = append(buf, '}')
	}
	buf = append(buf, '}')
	return buf
}
