// SPDX-License-Identifier: EPL-2.0

// Package audio holds the PCM pipeline the decoders feed: the Source
// interface, a Registry of decoders keyed by file extension, a MonoMixer
// and a cubic Resampler.
//
// # Source Interface
//
// Every decoder and processing stage is a Source producing interleaved
// float32 samples in [-1, 1], so stages chain freely:
//
//	src, _ := mp2.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register(mp2.Decoder{}, "mp1", "mp2", "mpa")
//	registry.Register(wav.Decoder{}, "wav")
//	decoder, ok := registry.ForFile("speech.mp2")
//
// # Reading
//
// ReadSamples returns io.EOF once the stream is exhausted, possibly
// together with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // Process buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
