package presenter

// VisibilityModel provides shown/hidden state access.
type VisibilityModel interface {
	Visible() bool
	SetVisible(bool) bool
}

// OverlaySwitch narrows what the presenter needs from the overlay.
type OverlaySwitch interface {
	SetVisible(bool)
	Cancel()
}

// VisibilityView updates UI elements affected by showing or hiding the overlay.
type VisibilityView interface {
	OverlayShown(bool)
}

// VisibilityPresenter owns presentation logic for toggling the crop overlay.
type VisibilityPresenter struct {
	model   VisibilityModel
	overlay OverlaySwitch
	view    VisibilityView
}

func NewVisibilityPresenter(model VisibilityModel, overlay OverlaySwitch, view VisibilityView) *VisibilityPresenter {
	return &VisibilityPresenter{model: model, overlay: overlay, view: view}
}

// Show makes the overlay capture pointers again and redraws it. Idempotent.
func (c *VisibilityPresenter) Show() {
	if c == nil || c.model == nil || c.overlay == nil || c.view == nil {
		return
	}
	if c.model.Visible() { // already shown
		return
	}
	c.model.SetVisible(true)
	c.overlay.SetVisible(true)
	c.view.OverlayShown(true)
}

// Hide aborts any gesture and lets pointers pass through to the image. Idempotent.
func (c *VisibilityPresenter) Hide() {
	if c == nil || c.model == nil || c.overlay == nil || c.view == nil {
		return
	}
	if !c.model.Visible() { // already hidden
		return
	}
	c.overlay.Cancel()
	c.overlay.SetVisible(false)
	c.model.SetVisible(false)
	c.view.OverlayShown(false)
}

// Toggle flips visibility delegating to Show/Hide.
func (c *VisibilityPresenter) Toggle() {
	if c == nil || c.model == nil {
		return
	}
	if c.model.Visible() {
		c.Hide()
		return
	}
	c.Show()
}
