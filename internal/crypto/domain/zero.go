package domain

// Zero overwrites every given byte slice with zeros so key material does not linger in
// memory after it has been handed to its final owner.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
}
