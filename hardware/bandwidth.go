package hardware

// RequiredBandwidthBps is the sustained bandwidth needed to stream bytes
// within the per-layer time budget.
func RequiredBandwidthBps(bytes int64, layerSeconds float64) float64 {
	if layerSeconds <= 0 {
		return 0
	}
	return float64(bytes) * 8 / layerSeconds
}

// TransferSeconds is the residency time of bytes on a channel of the given
// sustained bandwidth.
func TransferSeconds(bytes int64, bandwidthBps float64) float64 {
	if bandwidthBps <= 0 {
		return 0
	}
	return float64(bytes) * 8 / bandwidthBps
}
