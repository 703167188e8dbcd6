// Package domains holds the ordered registry of independently synchronized
// units of study state and the codecs that move each of them between the
// local store and an opaque [models.Payload].
//
// The sync coordinator only iterates the [Registry]; it never looks inside
// a payload. Every domain owns its typed shape, the local keys it reads and
// writes, and any migration between historical shapes.
package domains
