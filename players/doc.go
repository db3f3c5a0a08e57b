// SPDX-License-Identifier: EPL-2.0

// Package players renders tracks to audio output backends.
//
// # Backends
//
// Three backends implement the Player interface:
//
//   - PortAudioPlayer writes to the default output device through
//     PortAudio, using a blocking stream.
//   - MalgoPlayer writes to the default output device through miniaudio,
//     feeding the device from its data callback.
//   - BufferPlayer renders the track as a 16-bit PCM WAV object written
//     to an io.Writer, for headless environments.
//
// # Selection
//
// Detect picks a backend from the environment. SONOTRACK_PLAYER forces a
// specific backend by name; when it is unset the hardware backends are
// probed in order and the first one that initializes is returned. A .env
// file in the working directory is honored.
//
// # Lifecycle
//
// Every player must be closed after use. Hardware backends hold library
// contexts that are released by Close; the buffer backend closes its
// writer when the writer is closable.
package players
