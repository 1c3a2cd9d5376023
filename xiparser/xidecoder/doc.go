/*

Package xidecoder implements the content-derived rotating-byte cipher used
by several record kinds, and the blind format detectors that classify a raw
archive buffer without any on-disk magic number.

Detection and decoding are deliberately kept separate from record parsing
(package xiparser): a detector never mutates the buffer, and those that need
a decoded view look at a throwaway, trial-decoded copy of the buffer's head;
the real, in-place decode happens once detection has picked a kind.

*/
package xidecoder
