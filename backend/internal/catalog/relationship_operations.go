package catalog

// Relationships walks the cross-links once and collects every
// connection touching the given model. Outgoing and incoming entries
// stay interleaved in document order. An edge whose source matches is
// reported outgoing even when its target matches too, and links
// naming models that never loaded are skipped without comment.
func (c *Catalog) Relationships(id string) []Connection {
	var conns []Connection
	for _, e := range c.edges {
		if e.Source == id {
			if other, ok := c.byID[e.Target]; ok {
				conns = append(conns, Connection{
					Post:      other,
					Reason:    e.Reason,
					Direction: DirectionOutgoing,
				})
			}
		} else if e.Target == id {
			if other, ok := c.byID[e.Source]; ok {
				conns = append(conns, Connection{
					Post:      other,
					Reason:    e.Reason,
					Direction: DirectionIncoming,
				})
			}
		}
	}
	return conns
}
