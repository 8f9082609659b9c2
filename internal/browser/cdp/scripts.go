// internal/browser/cdp/scripts.go
package cdp

// Function declarations invoked with Runtime.callFunctionOn. `this` is the remote object
// the call targets. Each returns a plain value or an object, never throws.
const (
	// windowTagProperty holds the identity tag assigned to every window the host sees.
	windowTagProperty = "__scalpelGeometryID"

	jsTagWindow = `function(id) {
	try {
		if (!Object.prototype.hasOwnProperty.call(this, '` + windowTagProperty + `')) {
			Object.defineProperty(this, '` + windowTagProperty + `', { value: id });
		}
		return String(this.` + windowTagProperty + `);
	} catch (e) {
		return '';
	}
}`

	jsNumberProperty = `function(name) {
	try {
		const v = this[name];
		if (typeof v === 'number' && !isNaN(v)) {
			return { ok: true, value: v };
		}
	} catch (e) {}
	return { ok: false, value: 0 };
}`

	jsSetProperty = `function(name, value) {
	this[name] = value;
	return true;
}`

	jsBoundingClientRect = `function() {
	if (typeof this.getBoundingClientRect !== 'function') {
		return { ok: false };
	}
	const r = this.getBoundingClientRect();
	return { ok: true, left: r.left, top: r.top, width: r.width, height: r.height };
}`

	jsOwnerDocument   = `function() { return this.ownerDocument || null; }`
	jsDocumentElement = `function() { return this.documentElement || null; }`
	jsBody            = `function() { return this.body || null; }`
	jsDefaultView     = `function() { return this.defaultView || null; }`
	jsOwnerWindow     = `function() { return (this.ownerDocument && this.ownerDocument.defaultView) || null; }`
	jsWindowDocument  = `function() { try { return this.document; } catch (e) { return null; } }`
	jsCompatMode      = `function() { return String(this.compatMode || ''); }`
	jsContentWindow   = `function() { try { return this.contentWindow || null; } catch (e) { return null; } }`
	jsFrameElement    = `function() { try { return this.frameElement || null; } catch (e) { return null; } }`
	jsParentWindow    = `function() { try { return this.parent === this ? null : this.parent; } catch (e) { return null; } }`
	jsScrollWindowTo  = `function(left, top) { this.scrollTo(left, top); return true; }`

	jsComputedStyle = `function(property) {
	const view = this.ownerDocument && this.ownerDocument.defaultView;
	if (!view) {
		return '';
	}
	return String(view.getComputedStyle(this).getPropertyValue(property));
}`

	jsSetStyle = `function(properties) {
	for (const name of Object.keys(properties)) {
		this.style.setProperty(name, properties[name]);
	}
	return true;
}`

	// Selectors are XPath expressions evaluated against the window's document.
	jsFirstMatch = `function(expr) {
	try {
		const doc = this.document;
		const n = doc.evaluate(expr, doc, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null).singleNodeValue;
		return n && n.nodeType === Node.ELEMENT_NODE ? n : null;
	} catch (e) {
		return null;
	}
}`

	jsAllMatches = `function(expr) {
	const out = [];
	try {
		const doc = this.document;
		const r = doc.evaluate(expr, doc, null, XPathResult.ORDERED_NODE_SNAPSHOT_TYPE, null);
		for (let i = 0; i < r.snapshotLength; i++) {
			const n = r.snapshotItem(i);
			if (n.nodeType === Node.ELEMENT_NODE) {
				out.push(n);
			}
		}
	} catch (e) {}
	return out;
}`
)
