package adapters

import (
	"bytes"
	"io"
	"os"

	"anonapi/internal/ports"
)

// DICOM part 10 files carry a 128-byte preamble followed by the magic
// bytes "DICM".
const dicomPreambleSize = 128

var dicomMagic = []byte("DICM")

type DicomProbeAdapter struct{}

func NewDicomProbeAdapter() DicomProbeAdapter {
	return DicomProbeAdapter{}
}

func (a DicomProbeAdapter) IsDicomFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	header := make([]byte, dicomPreambleSize+len(dicomMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return false
	}
	return bytes.Equal(header[dicomPreambleSize:], dicomMagic)
}

var _ ports.DicomProbePort = DicomProbeAdapter{}
