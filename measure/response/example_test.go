package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/measure/response"
)

func ExampleMovingAverage() {
	r, err := response.MovingAverage(10, 4096)
	if err != nil {
		panic(err)
	}

	fmt.Printf("cutoff at 60 fps: %.1f Hz\n", r.Cutoff3dB()*60)
	fmt.Printf("group delay: %.1f frames\n", response.MovingAverageGroupDelay(10))

	// Output:
	// cutoff at 60 fps: 2.7 Hz
	// group delay: 4.5 frames
}
