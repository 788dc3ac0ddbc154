package render

// clientScript is the static client-side payload: notification toggle,
// haptic feedback, simulated price ticking, and service-worker
// registration. It is passed through unchanged into every document.
const clientScript = `
        // Toggle notification
        function toggleNotify(element) {
            element.classList.toggle('on');
            vibrate();
        }

        // Haptic feedback
        function vibrate(duration = 10) {
            if ('vibrate' in navigator) {
                navigator.vibrate(duration);
            }
        }

        // Real-time price updates
        function updatePrice() {
            const priceEl = document.querySelector('.price');
            const changeEl = document.querySelector('.change');
            if (priceEl) {
                const current = parseFloat(priceEl.textContent.replace('$', '').replace(',', ''));
                const change = (Math.random() - 0.5) * 0.02 * current;
                const newPrice = current + change;

                if (current > 1000) {
                    priceEl.textContent = '$' + newPrice.toLocaleString('en-US', { minimumFractionDigits: 2, maximumFractionDigits: 2 });
                } else {
                    priceEl.textContent = '$' + newPrice.toFixed(2);
                }

                if (changeEl) {
                    const percent = ((Math.random() - 0.4) * 5).toFixed(1);
                    changeEl.textContent = (percent > 0 ? '+' : '') + percent + '%';
                    changeEl.className = 'change ' + (percent > 0 ? 'positive' : 'negative');
                }
            }
        }

        // Initialize
        document.addEventListener('DOMContentLoaded', () => {
            // Start price updates
            setInterval(updatePrice, 5000);

            // Add haptic to all interactive elements
            document.querySelectorAll('.haptic').forEach(el => {
                el.addEventListener('click', () => vibrate());
            });
        });

        // PWA Support
        if ('serviceWorker' in navigator) {
            navigator.serviceWorker.register('/sw.js').catch(() => {});
        }`
