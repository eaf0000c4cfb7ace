package graphics

import "errors"

// Startup failures of the render backend. All of them are fatal.
var (
	ErrShaderCompile    = errors.New("shader compile failed")
	ErrShaderLink       = errors.New("shader link failed")
	ErrAssetLoad        = errors.New("asset load failed")
	ErrBufferAllocation = errors.New("buffer allocation failed")
)
