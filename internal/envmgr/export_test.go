package envmgr

// HeldGroupLocks reports how many group write locks c currently tracks.
func HeldGroupLocks(c *Client) int {
	return c.locks.len()
}
