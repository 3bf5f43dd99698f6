// Package demucs invokes the demucs model runner to separate a WAV file into
// stems and enumerates what it produced. Directory layout and stem naming are
// owned by demucs.
package demucs
