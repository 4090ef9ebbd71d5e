// Package livedsl compiles a small declarative UI language into a markup
// tree and keeps that tree current as the source, the viewport and the
// program's state change.
//
// Compile is the pure pipeline: parse, expand components, filter by
// viewport width, render. Driver wraps it for live use: every edit,
// resize or click runs one synchronous compile cycle and publishes the
// outcome to a Sink.
//
//	d, err := livedsl.NewDriver(livedsl.WithSink(sink), livedsl.WithViewportWidth(800))
//	if err != nil {
//		return err
//	}
//	d.SetSource(`state count = 0
//	Column {
//		Text("Count: {count}") size 18
//		Button("+") click increment count
//	}`)
//	d.Click("count", 1)
package livedsl
