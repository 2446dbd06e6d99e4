// Package builder provides fluent producer-side construction of
// surfaces.
//
// A Builder accumulates components and an initial data model, then
// Build flattens the tree into the ordered message triple
// (beginRendering, surfaceUpdate, dataModelUpdate) a client applies:
//
//	b := builder.New()
//	col := b.Column("reg")
//	col.Add(b.Text("", "User Registration", "h3"))
//	col.Add(b.TextField("username", "Username", "", ""))
//	col.Add(b.Button("", "Submit", "submitForm"))
//	bundle, err := b.Build(builder.Options{Title: "User Registration"})
//
// Form and CardGrid compose the two most common patterns directly.
package builder
