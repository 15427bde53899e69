// Package generator runs backends over a board and publishes their output.
//
// Generate executes the selected backends concurrently, each with its own
// traversal context, and returns their results only when every backend
// succeeded. Write lays the results out below an output root:
//
//	<dir>/<module>.ir.json   IR modules, handed to the target renderer
//	<dir>/<descriptor>       system.mhs, system.mss
//	<dir>/<text>             pass-through files such as system.ucf
//	<dest>                   deployed template files and directories
//
// Output is staged in a temporary directory below the root and moved into
// place once everything was written, so a failed write publishes nothing.
//
//	results, err := generator.Generate(ctx, b,
//		client.New(client.Options{}),
//		sdk.New(sdk.Options{}),
//	)
//	if err != nil {
//		return err
//	}
//	return generator.Write("out", results)
package generator
