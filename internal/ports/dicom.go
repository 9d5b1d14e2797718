package ports

// DicomProbePort answers the single question the mapping flow needs
// from the DICOM world: is this file a DICOM file.
type DicomProbePort interface {
	IsDicomFile(path string) bool
}
