package fynetheme

import (
	"fyne.io/fyne/v2"

	"github.com/fynestrap/fynestrap/render"
)

// AssetResource wraps a rendered element asset as a static Fyne resource,
// usable anywhere Fyne accepts an image resource (canvas.NewImageFromResource,
// button icons, and so on). The PNG encoding is memoized on the asset.
func AssetResource(asset *render.Asset) (*fyne.StaticResource, error) {
	data, err := asset.PNG()
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(asset.Key()+".png", data), nil
}
