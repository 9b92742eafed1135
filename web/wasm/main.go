//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/JWKennington/app-dsp-filter-design/internal/webapi"
)

var (
	session *webapi.Session
	funcs   []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(_ []js.Value) any {
		s, err := webapi.NewSession()
		if err != nil {
			return err.Error()
		}
		session = s
		return js.Null()
	}))

	api.Set("setRoots", export(func(args []js.Value) any {
		if session == nil || len(args) < 5 {
			return js.Null()
		}
		err := session.SetRoots(
			floatSlice(args[0]),
			floatSlice(args[1]),
			floatSlice(args[2]),
			floatSlice(args[3]),
			args[4].Float(),
		)
		if err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setCoefficients", export(func(args []js.Value) any {
		if session == nil || len(args) < 2 {
			return js.Null()
		}
		if err := session.SetCoefficients(floatSlice(args[0]), floatSlice(args[1])); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setDomain", export(func(args []js.Value) any {
		if session == nil || len(args) < 1 {
			return js.Null()
		}
		if err := session.SetDomain(args[0].String()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setCausality", export(func(args []js.Value) any {
		if session == nil || len(args) < 1 {
			return js.Null()
		}
		if err := session.SetCausality(args[0].String()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("design", export(func(args []js.Value) any {
		if session == nil || len(args) < 1 {
			return js.Null()
		}
		p := args[0]
		err := session.Design(
			p.Get("family").String(),
			p.Get("shape").String(),
			p.Get("order").Int(),
			p.Get("domain").String(),
			p.Get("cutoff1").Float(),
			p.Get("cutoff2").Float(),
			p.Get("ripple").Float(),
			p.Get("atten").Float(),
		)
		if err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("poleZero", export(func(_ []js.Value) any {
		if session == nil {
			return js.Null()
		}
		pz := session.PoleZero()
		obj := js.Global().Get("Object").New()
		obj.Set("zeroRe", floatArray(pz.ZeroRe))
		obj.Set("zeroIm", floatArray(pz.ZeroIm))
		obj.Set("poleRe", floatArray(pz.PoleRe))
		obj.Set("poleIm", floatArray(pz.PoleIm))
		return obj
	}))

	api.Set("frequencyResponse", export(func(_ []js.Value) any {
		if session == nil {
			return js.Null()
		}
		resp, err := session.FrequencyResponse()
		if err != nil {
			return err.Error()
		}
		obj := js.Global().Get("Object").New()
		obj.Set("frequencies", floatArray(resp.Frequencies))
		obj.Set("magnitudeDB", floatArray(resp.MagnitudeDB))
		obj.Set("phaseDeg", floatArray(resp.PhaseDeg))
		return obj
	}))

	api.Set("impulseResponse", export(func(_ []js.Value) any {
		if session == nil {
			return js.Null()
		}
		resp, err := session.ImpulseResponse()
		if err != nil {
			return err.Error()
		}
		obj := js.Global().Get("Object").New()
		obj.Set("axis", floatArray(resp.Axis))
		obj.Set("amplitudes", floatArray(resp.Amplitudes))
		return obj
	}))

	js.Global().Set("FilterDesign", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

func floatSlice(v js.Value) []float64 {
	out := make([]float64, v.Length())
	for i := range out {
		out[i] = v.Index(i).Float()
	}
	return out
}

func floatArray(v []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(v))
	for i, x := range v {
		arr.SetIndex(i, x)
	}
	return arr
}
