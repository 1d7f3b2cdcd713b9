// Package video chains frame effects around the kaleidoscope transform.
//
// A Processor validates an I420 frame, optionally downscales it so that
// neither side exceeds a configured maximum, and runs it through an
// EffectChain:
//
//	p, err := video.NewProcessor(video.ProcessorConfig{MaxDimension: 1920})
//	if err != nil {
//	    return err
//	}
//	k, err := video.NewKaleidoscopeEffect(kaleidoscope.DefaultParams(), false)
//	if err != nil {
//	    return err
//	}
//	p.GetEffectChain().AddEffect(video.NewBrightnessEffect(20))
//	p.GetEffectChain().AddEffect(k)
//	out, err := p.Process(in)
//
// Effects run in the order they were added. The chain works on a copy, so
// the frame passed to Process is left untouched.
package video
