/*
Package pixavatar generates symmetric pixel-art avatars from a seed and renders them as SVG.

A seed is hashed into the state of a small deterministic random stream, which is used
to pick the column and row bit patterns of the avatar together with one color per row.
These values are serialized into a compact base36 text, the avatar data, which can be
stored and rendered later on:

	package main

	import (
		"fmt"

		"github.com/esimov/pixavatar"
	)

	func main() {
		data, err := pixavatar.GenerateAvatarData(16, "-", "john.doe@example.com")
		if err != nil {
			fmt.Printf("Error generating avatar data: %s", err.Error())
		}
		svg, err := pixavatar.RenderAvatarFromData(data, pixavatar.Circle, 256, "-")
		if err != nil {
			fmt.Printf("Error rendering the avatar: %s", err.Error())
		}
		fmt.Println(svg)
	}

The package also provides a command line interface. To check the supported commands type:

	$ pixavatar --help
*/
package pixavatar
